// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// same layout as the key files written by marketd gen-market-keys
const keyTag = "PRIVATE:"

func readKey(fileName string) (*account.PrivateKey, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, keyTag) {
		return nil, fault.ErrInvalidPrivateKeyFile
	}
	return account.PrivateKeyFromBase58(strings.TrimSpace(text[len(keyTag):]))
}

func writeKey(fileName string, key *account.PrivateKey) error {
	if util.EnsureFileExists(fileName) {
		return fault.ErrKeyFileExists
	}
	return os.WriteFile(fileName, []byte(keyTag+key.String()+"\n"), 0600)
}
