// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - settlement token balances
//
// a minimal fungible ledger: balances per currency and account, an
// issuer that can create supply and transfers that fail rather than
// overdraw
package token

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

// Ledger - settlement token balances
type Ledger struct {
	log    *logger.L
	issuer *account.Account
}

// New - create a ledger; only the issuer may create supply
func New(issuer *account.Account) *Ledger {
	return &Ledger{
		log:    logger.New("token"),
		issuer: issuer,
	}
}

// Transfer - move an amount of a token between accounts
//
// the sender must authorise and hold at least the amount
func (l *Ledger) Transfer(trx storage.Transaction, a auth.Authoriser, token currency.Currency, from *account.Account, to *account.Account, value decimal.Decimal) error {
	if err := a.RequireAuth(from); nil != err {
		return err
	}
	if err := checkTransfer(token, value); nil != err {
		return err
	}

	balance := l.Balance(trx, token, from)
	if balance.LessThan(value) {
		return fault.ErrInsufficientBalance
	}
	if from.Equal(to) {
		return nil
	}

	credit := l.Balance(trx, token, to).Add(value)
	if err := amount.Check(credit); nil != err {
		return err
	}

	putBalance(trx, token, from, balance.Sub(value))
	putBalance(trx, token, to, credit)

	l.log.Debugf("transfer: %s %s from: %s to: %s", value, token, from, to)
	return nil
}

// Issue - create new supply for an account
func (l *Ledger) Issue(trx storage.Transaction, a auth.Authoriser, token currency.Currency, to *account.Account, value decimal.Decimal) error {
	if err := a.RequireAuth(l.issuer); nil != err {
		return err
	}
	if err := checkTransfer(token, value); nil != err {
		return err
	}

	credit := l.Balance(trx, token, to).Add(value)
	if err := amount.Check(credit); nil != err {
		return err
	}
	putBalance(trx, token, to, credit)

	l.log.Infof("issue: %s %s to: %s", value, token, to)
	return nil
}

// Balance - an account's balance, zero if it has never held the token
func (l *Ledger) Balance(r storage.Reader, token currency.Currency, owner *account.Account) decimal.Decimal {
	packed := r.Get(storage.Pool.Balances, balanceKey(token, owner))
	if nil == packed {
		return amount.Zero
	}
	u := util.NewUnpacker(packed)
	value := amount.Unpack(u)
	if err := u.Err(); nil != err {
		logger.Panicf("token: balance for: %s error: %s", owner, err)
	}
	return value
}

func checkTransfer(token currency.Currency, value decimal.Decimal) error {
	if !token.IsValid() {
		return fault.ErrInvalidCurrency
	}
	if err := amount.Check(value); nil != err {
		return err
	}
	if !value.IsPositive() {
		return fault.ErrInvalidAmount
	}
	return nil
}

func putBalance(trx storage.Transaction, token currency.Currency, owner *account.Account, value decimal.Decimal) {
	key := balanceKey(token, owner)
	if value.IsZero() {
		trx.Delete(storage.Pool.Balances, key)
		return
	}
	trx.Put(storage.Pool.Balances, key, amount.Pack(util.Packed{}, value))
}

func balanceKey(token currency.Currency, owner *account.Account) []byte {
	return append(util.KeyFromUint64(uint64(token)), owner.Bytes()...)
}
