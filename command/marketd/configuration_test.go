// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/chain"
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "marketd.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.client_rpc = {
    listen = { "127.0.0.1:2130" },
}
M.rate_source = {
    source = "file",
    file = "rate.json",
}
return M
`)

	c, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, chain.Testing, c.Chain, "chain")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "custodian.private"), c.Keys.Custodian, "custodian key")
	assert.Equal(t, filepath.Join(dir, "vault.private"), c.Keys.Vault, "vault key")
	assert.Equal(t, filepath.Join(dir, "publisher.public"), c.Publishing.PublicKey, "publisher key")
	assert.Equal(t, filepath.Join(dir, "rate.json"), c.RateSource.File, "rate file")
	assert.Equal(t, "", c.PidFile, "pid file")
	assert.Equal(t, uint64(defaultRPCClients), c.ClientRPC.MaximumConnections, "rpc clients")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "rpc listen")

	info, err := os.Stat(filepath.Join(dir, "log"))
	assert.Nil(t, err, "log directory")
	assert.True(t, info.IsDir(), "log is not a directory")
}

func TestGetConfigurationChains(t *testing.T) {
	_, fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    chain = "",
}
`)
	c, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, chain.Live, c.Chain, "empty chain")
	assert.Equal(t, "live.leveldb", filepath.Base(c.Database.Name), "live database")

	_, fileName = writeConfiguration(t, `
return {
    data_directory = ".",
    chain = "local",
    database = { name = "own.leveldb" },
}
`)
	c, err = getConfiguration(fileName, nil)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, "own.leveldb", filepath.Base(c.Database.Name), "explicit database")
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no data directory", `return { chain = "testing" }`},
		{"unknown chain", `return { data_directory = ".", chain = "bitcoin" }`},
		{"database path", `return { data_directory = ".", database = { name = "x/y.leveldb" } }`},
		{"missing directory", `return { data_directory = "/no/such/directory/here" }`},
		{"not lua", `this is not a configuration`},
	}

	for _, test := range tests {
		_, fileName := writeConfiguration(t, test.text)
		_, err := getConfiguration(fileName, nil)
		assert.NotNil(t, err, test.name)
	}
}
