// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/token"
)

func TestIssueAndTransfer(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	_, issuer := fixtures.NewAccount(t)
	_, alice := fixtures.NewAccount(t)
	_, bob := fixtures.NewAccount(t)

	l := token.New(issuer)

	trx := fixtures.Begin(t)
	err := l.Issue(trx, auth.Trusted(alice), currency.USDC, alice, amount.New(100))
	assert.Equal(t, fault.ErrNotAuthorised, err, "issue by non issuer")

	err = l.Issue(trx, auth.Trusted(issuer), currency.USDC, alice, amount.New(100))
	assert.Nil(t, err, "issue error")

	err = l.Transfer(trx, auth.Trusted(bob), currency.USDC, alice, bob, amount.New(10))
	assert.Equal(t, fault.ErrNotAuthorised, err, "transfer without sender")

	err = l.Transfer(trx, auth.Trusted(alice), currency.USDC, alice, bob, amount.New(101))
	assert.Equal(t, fault.ErrInsufficientBalance, err, "overdraft allowed")
	assert.True(t, fault.IsErrAccounting(err), "overdraft not an accounting error")

	err = l.Transfer(trx, auth.Trusted(alice), currency.USDC, alice, bob, amount.Zero)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero transfer allowed")

	err = l.Transfer(trx, auth.Trusted(alice), currency.NGNG, alice, bob, amount.New(1))
	assert.Equal(t, fault.ErrInsufficientBalance, err, "transfer of unheld token")

	err = l.Transfer(trx, auth.Trusted(alice), currency.USDC, alice, bob, amount.New(40))
	assert.Nil(t, err, "transfer error")
	assert.Nil(t, trx.Commit(), "commit error")

	r := storage.Committed
	assert.True(t, amount.New(60).Equal(l.Balance(r, currency.USDC, alice)), "alice balance")
	assert.True(t, amount.New(40).Equal(l.Balance(r, currency.USDC, bob)), "bob balance")
	assert.True(t, l.Balance(r, currency.NGNG, bob).IsZero(), "other token balance")
}

func TestTransferAll(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	_, issuer := fixtures.NewAccount(t)
	_, alice := fixtures.NewAccount(t)

	l := token.New(issuer)

	trx := fixtures.Begin(t)
	assert.Nil(t, l.Issue(trx, auth.Trusted(issuer), currency.NGNG, alice, amount.New(5)), "issue error")
	assert.Nil(t, l.Transfer(trx, auth.Trusted(alice), currency.NGNG, alice, issuer, amount.New(5)), "transfer error")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.True(t, l.Balance(storage.Committed, currency.NGNG, alice).IsZero(), "emptied balance")
	assert.Nil(t, storage.Pool.Balances.Get(append([]byte{0, 0, 0, 0, 0, 0, 0, byte(currency.NGNG)}, alice.Bytes()...)), "empty balance record kept")
}
