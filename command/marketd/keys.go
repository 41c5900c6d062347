// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

const keyTag = "PRIVATE:"

// create a market key file, never overwriting an existing one
func makeAccountKey(testnet bool, fileName string) (*account.Account, error) {
	if util.EnsureFileExists(fileName) {
		return nil, fault.ErrKeyFileExists
	}

	key, err := account.NewPrivateKey(testnet)
	if nil != err {
		return nil, err
	}

	data := keyTag + key.String() + "\n"
	if err = os.WriteFile(fileName, []byte(data), 0600); nil != err {
		return nil, fmt.Errorf("error writing key file error: %s", err)
	}

	return key.Account(), nil
}

// read a market key file
func readAccountKey(fileName string) (*account.PrivateKey, error) {
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
