// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/marketd/account"
	marketrpc "github.com/bitmark-inc/marketd/rpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a marketd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the marketd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// Call - send prepared arguments and return the raw JSON result
func (c *Client) Call(method string, arguments interface{}) (json.RawMessage, error) {
	if c.verbose {
		c.printJson(method+" request", arguments)
	}

	var reply json.RawMessage
	if err := c.client.Call(method, arguments, &reply); nil != err {
		return nil, err
	}

	if c.verbose {
		c.printJson(method+" reply", reply)
	}
	return reply, nil
}

func (c *Client) printJson(title string, message interface{}) {
	fmt.Fprintf(c.handle, "%s:\n", title)
	printJson(c.handle, message)
}

// prepare - decode the JSON arguments for a method and sign them
// if the method takes a signature block
func prepare(method string, text string, key *account.PrivateKey, now time.Time) (interface{}, error) {
	create, ok := methods[method]
	if !ok {
		return nil, ErrUnknownMethod
	}
	arguments := create()

	if "" != strings.TrimSpace(text) {
		if err := json.Unmarshal([]byte(text), arguments); nil != err {
			return nil, err
		}
	}

	signable, ok := arguments.(marketrpc.Signable)
	if !ok {
		return arguments, nil
	}
	if nil == key {
		return nil, ErrKeyFileRequired
	}
	if err := marketrpc.Sign(method, signable, key, now); nil != err {
		return nil, err
	}
	return arguments, nil
}
