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

	"github.com/bitmark-inc/marketd/fault"
)

func TestAccountKeyFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "custodian.private")

	acc, err := makeAccountKey(true, fileName)
	assert.Nil(t, err, "make key")
	assert.True(t, acc.IsTesting(), "not a testing account")

	key, err := readAccountKey(fileName)
	assert.Nil(t, err, "read key")
	assert.True(t, acc.Equal(key.Account()), "account differs")

	_, err = makeAccountKey(true, fileName)
	assert.Equal(t, fault.ErrKeyFileExists, err, "overwrote key")

	live := filepath.Join(t.TempDir(), "vault.private")
	acc, err = makeAccountKey(false, live)
	assert.Nil(t, err, "make live key")
	assert.False(t, acc.IsTesting(), "not a live account")
}

func TestReadAccountKeyErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := readAccountKey(filepath.Join(dir, "absent"))
	assert.NotNil(t, err, "missing file")

	fileName := filepath.Join(dir, "bad.private")
	err = os.WriteFile(fileName, []byte("PUBLIC:abc\n"), 0600)
	assert.Nil(t, err, "write")
	_, err = readAccountKey(fileName)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "wrong tag")

	err = os.WriteFile(fileName, []byte("PRIVATE:0OIl\n"), 0600)
	assert.Nil(t, err, "write")
	_, err = readAccountKey(fileName)
	assert.NotNil(t, err, "bad base58")
}
