// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/storage"
)

const (
	dir          = "testing"
	LogCategory  = "testing"
	databaseName = "test.leveldb"
)

// SetupTestLogger - file logger at critical level under ./testing
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - logger and an empty database
func SetupTestDatabase(t *testing.T) {
	SetupTestLogger()
	_ = os.RemoveAll(databaseName)
	if err := storage.Initialise(databaseName, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestDatabase - close and remove the database then the logger
func TeardownTestDatabase() {
	storage.Finalise()
	_ = os.RemoveAll(databaseName)
	TeardownTestLogger()
}

// NewAccount - a fresh testing key pair
func NewAccount(t *testing.T) (*account.PrivateKey, *account.Account) {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	return key, key.Account()
}

// Begin - start a transaction or fail the test
func Begin(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin transaction error: %s", err)
	}
	return trx
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
