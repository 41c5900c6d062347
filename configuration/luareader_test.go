// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/configuration"
	"github.com/bitmark-inc/marketd/fault"
)

type rpcSection struct {
	Listen             []string `gluamapper:"listen"`
	MaximumConnections int      `gluamapper:"maximum_connections"`
}

type testConfiguration struct {
	Chain   string            `gluamapper:"chain"`
	Name    string            `gluamapper:"name"`
	RPC     rpcSection        `gluamapper:"client_rpc"`
	Levels  map[string]string `gluamapper:"levels"`
	Missing string            `gluamapper:"missing"`
}

func write(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestParse(t *testing.T) {
	fileName := write(t, `
local M = {}
M.chain = "testing"
M.name = arg["name"] or "unset"
M.client_rpc = {
  listen = { "127.0.0.1:2130", "[::1]:2130" },
  maximum_connections = 5,
}
M.levels = { main = "info", DEFAULT = "critical" }
return M
`)

	c := &testConfiguration{
		Missing: "default kept",
	}
	err := configuration.ParseConfigurationFile(fileName, c, map[string]string{"name": "node-one"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "testing", c.Chain, "chain")
	assert.Equal(t, "node-one", c.Name, "variable")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.RPC.Listen, "listen")
	assert.Equal(t, 5, c.RPC.MaximumConnections, "connections")
	assert.Equal(t, "info", c.Levels["main"], "levels")
	assert.Equal(t, "default kept", c.Missing, "default")
}

func TestParseErrors(t *testing.T) {
	c := &testConfiguration{}

	err := configuration.ParseConfigurationFile(write(t, "return 42"), c, nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "not a table")

	err = configuration.ParseConfigurationFile(write(t, "this is not lua"), c, nil)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), c, nil)
	assert.NotNil(t, err, "missing file")
}
