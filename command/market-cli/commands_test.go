// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	marketrpc "github.com/bitmark-inc/marketd/rpc"
)

func TestMethodsDecodeEmpty(t *testing.T) {
	for _, name := range methodNames() {
		arguments := methods[name]()
		err := json.Unmarshal([]byte(`{}`), arguments)
		assert.Nil(t, err, name)
	}
}

func TestPrepareQuery(t *testing.T) {
	arguments, err := prepare("Listing.Get", `{"id":"7"}`, nil, time.Now())
	assert.Nil(t, err, "prepare")
	get, ok := arguments.(*marketrpc.ListingGetArguments)
	assert.True(t, ok, "wrong arguments type")
	assert.Equal(t, uint64(7), get.Id, "wrong id")
}

func TestPrepareSigned(t *testing.T) {
	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "new key")

	now := time.Unix(1700000000, 0)
	arguments, err := prepare("Trade.Purchase", `{"id":"3"}`, key, now)
	assert.Nil(t, err, "prepare")

	purchase := arguments.(*marketrpc.TradeArguments)
	assert.Equal(t, uint64(3), purchase.Id, "wrong id")
	assert.True(t, key.Account().Equal(purchase.Signer), "wrong signer")
	assert.Equal(t, now.Unix(), purchase.Timestamp, "wrong timestamp")

	message, err := marketrpc.Message("Trade.Purchase", purchase)
	assert.Nil(t, err, "message")
	assert.Nil(t, purchase.Signer.CheckSignature(message, purchase.Signature), "bad signature")
}

func TestPrepareErrors(t *testing.T) {
	_, err := prepare("Listing.Explode", "", nil, time.Now())
	assert.Equal(t, ErrUnknownMethod, err, "unknown method")

	_, err = prepare("Trade.Cancel", `{"id":"3"}`, nil, time.Now())
	assert.Equal(t, ErrKeyFileRequired, err, "unsigned mutation")

	_, err = prepare("Listing.Get", `{"id":`, nil, time.Now())
	assert.NotNil(t, err, "bad json")
}

func TestKeyFile(t *testing.T) {
	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "new key")

	fileName := filepath.Join(t.TempDir(), "user.private")
	assert.Nil(t, writeKey(fileName, key), "write key")
	assert.Equal(t, fault.ErrKeyFileExists, writeKey(fileName, key), "overwrite")

	read, err := readKey(fileName)
	assert.Nil(t, err, "read key")
	assert.True(t, key.Account().Equal(read.Account()), "wrong key")
}
