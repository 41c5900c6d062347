// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/account"
	marketrpc "github.com/bitmark-inc/marketd/rpc"
)

type generatedKey struct {
	PrivateKey string           `json:"private_key"`
	Account    *account.Account `json:"account"`
	Testnet    bool             `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	testnet := c.Bool("testnet")
	key, err := account.NewPrivateKey(testnet)
	if nil != err {
		return err
	}

	if output := c.String("output"); "" != output {
		if err := writeKey(output, key); nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "key written to: %q\n", output)
		}
	}

	return printJson(m.w, generatedKey{
		PrivateKey: key.String(),
		Account:    key.Account(),
		Testnet:    testnet,
	})
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply marketrpc.InfoReply
	if err := client.client.Call("Node.Info", &marketrpc.InfoArguments{}, &reply); nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runMethods(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	for _, name := range methodNames() {
		arguments := methods[name]()
		_, signed := arguments.(marketrpc.Signable)
		fmt.Fprintf(m.w, "%s  (signed: %v)\n", name, signed)
		printJson(m.w, arguments)
	}
	return nil
}

func runCall(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	method := c.Args().Get(0)
	if "" == method {
		return ErrMissingMethod
	}
	text := c.Args().Get(1)

	var key *account.PrivateKey
	if "" != m.keyFile {
		k, err := readKey(m.keyFile)
		if nil != err {
			return err
		}
		key = k
	}

	arguments, err := prepare(method, text, key, time.Now())
	if nil != err {
		return err
	}

	client, err := NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Call(method, arguments)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
