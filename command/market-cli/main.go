// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	keyFile string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "market-cli"
	app.Usage = "call a marketd over its client RPC"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " marketd RPC `HOST:PORT`",
			EnvVar: "MARKET_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " private key `FILE` used to sign requests",
			EnvVar: "MARKET_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a private key and print it with its account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " create a key for the testing or local chains",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " also write the key to `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display marketd node information",
			Action: runInfo,
		},
		{
			Name:   "methods",
			Usage:  "list the callable RPC methods and their argument templates",
			Action: runMethods,
		},
		{
			Name:      "call",
			Usage:     "call an RPC method, signing it when the method requires it",
			ArgsUsage: "METHOD [JSON-ARGUMENTS]",
			Action:    runCall,
		},
		{
			Name:  "version",
			Usage: "display market-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			keyFile: c.GlobalString("key"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
