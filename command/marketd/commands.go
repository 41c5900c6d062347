// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/rpc/certificate"
	"github.com/bitmark-inc/marketd/util"
	"github.com/bitmark-inc/marketd/zmqutil"
)

const (
	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-publisher-keys", "publisher":
		publicKeyFilename := getFilenameWithDirectory(arguments, publisherPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publisherPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)
		addresses := []string{}
		if len(arguments) > 1 {
			addresses = arguments[1:]
		}
		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-market-keys", "keys":
		return false // defer processing until configuration is read

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		exitCode := 0
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
			exitCode = 1
		default:
			fmt.Printf("error: no such command: %q\n", command)
			exitCode = 1
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)         - display this message\n\n")
		fmt.Printf("  version                    (v)         - display version sting\n\n")

		fmt.Printf("  gen-publisher-keys [DIR]   (publisher) - create private key in: %q\n", "DIR/"+publisherPrivateKeyFilename)
		fmt.Printf("                                           and the public key in: %q\n", "DIR/"+publisherPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)      - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-market-keys            (keys)      - create the custodian and vault keys named in\n")
		fmt.Printf("                                           the configuration file for its chain\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)       - just run the program, same as no arguments\n")
		fmt.Printf("                                           for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)       - just check the configuration file\n")
		fmt.Printf("\n")

		if 0 != exitCode {
			exitwithstatus.Exit(exitCode)
		}
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration commands
//
// these need the configuration file but not the database
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "gen-market-keys", "keys":
		testnet := chain.Live != options.Chain
		for _, item := range []struct {
			name string
			file string
		}{
			{"custodian", options.Keys.Custodian},
			{"vault", options.Keys.Vault},
		} {
			acc, err := makeAccountKey(testnet, item.file)
			if nil != err {
				fmt.Printf("generate %s key: %q error: %s\n", item.name, item.file, err)
				exitwithstatus.Exit(1)
			}
			fmt.Printf("generated %s key: %q  account: %s\n", item.name, item.file, acc)
		}

	case "config-test", "cfg":
		shown := *options
		if "" != shown.ClientRPC.PrivateKey {
			shown.ClientRPC.PrivateKey = "(hidden)"
		}
		text, err := json.MarshalIndent(shown, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration error: %s", err)
		}
		fmt.Printf("configuration: %s\n", text)

	default: // unknown commands fall through to data command
		return false
	}

	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	err := util.EnsureDirectory(dir)
	if nil != err {
		exitwithstatus.Message("cannot create directory: %q  error: %s", dir, err)
	}

	return filepath.Join(dir, name)
}
