// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - per listing custody of payments
//
// at most one escrow per listing is Active; release pays the whole
// amount to the custodian for redistribution and refund returns it
// to the buyer, after which the record only serves as history
package escrow

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

// Payments - the fungible transfer primitive
type Payments interface {
	Transfer(trx storage.Transaction, a auth.Authoriser, token currency.Currency, from *account.Account, to *account.Account, value decimal.Decimal) error
}

// Escrow - custody record for a listing
type Escrow struct {
	Amount decimal.Decimal   `json:"amount"`
	Token  currency.Currency `json:"token"`
	Buyer  *account.Account  `json:"buyer"`
	Seller *account.Account  `json:"seller"`
	Status Status            `json:"status"`
}

// Vault - the escrow ledger
//
// funds are held by the vault account; the orchestrator moves the
// payment into it before calling Lock
type Vault struct {
	log       *logger.L
	custodian *account.Account
	account   *account.Account
	payments  Payments
}

// New - create a vault holding funds in its own account
func New(custodian *account.Account, vaultAccount *account.Account, payments Payments) *Vault {
	return &Vault{
		log:       logger.New("escrow"),
		custodian: custodian,
		account:   vaultAccount,
		payments:  payments,
	}
}

// Account - where locked funds are held
func (v *Vault) Account() *account.Account {
	return v.account
}

// Lock - record funds held for a listing
func (v *Vault) Lock(trx storage.Transaction, a auth.Authoriser, listing uint64, seller *account.Account, buyer *account.Account, token currency.Currency, value decimal.Decimal) error {
	if err := a.RequireAuth(v.custodian); nil != err {
		return err
	}
	if err := amount.Check(value); nil != err {
		return err
	}
	if !value.IsPositive() {
		return fault.ErrInvalidAmount
	}
	if e, ok := get(trx, listing); ok && Active == e.Status {
		return fault.ErrEscrowActive
	}

	put(trx, listing, &Escrow{
		Amount: value,
		Token:  token,
		Buyer:  buyer,
		Seller: seller,
		Status: Active,
	})

	v.log.Infof("lock: listing: %d amount: %s %s buyer: %s", listing, value, token, buyer)
	return nil
}

// Release - pay the custodied amount to the custodian
//
// returns the amount so the caller can redistribute it
func (v *Vault) Release(trx storage.Transaction, a auth.Authoriser, listing uint64) (decimal.Decimal, error) {
	if err := a.RequireAuth(v.custodian); nil != err {
		return amount.Zero, err
	}
	e, err := v.active(trx, listing)
	if nil != err {
		return amount.Zero, err
	}

	err = v.payments.Transfer(trx, auth.Trusted(v.account), e.Token, v.account, v.custodian, e.Amount)
	if nil != err {
		return amount.Zero, err
	}

	e.Status = Completed
	put(trx, listing, e)

	v.log.Infof("release: listing: %d amount: %s %s", listing, e.Amount, e.Token)
	return e.Amount, nil
}

// Refund - return the custodied amount to the buyer
func (v *Vault) Refund(trx storage.Transaction, a auth.Authoriser, listing uint64) error {
	if err := a.RequireAuth(v.custodian); nil != err {
		return err
	}
	e, err := v.active(trx, listing)
	if nil != err {
		return err
	}

	err = v.payments.Transfer(trx, auth.Trusted(v.account), e.Token, v.account, e.Buyer, e.Amount)
	if nil != err {
		return err
	}

	e.Status = Refunded
	put(trx, listing, e)

	v.log.Infof("refund: listing: %d amount: %s %s buyer: %s", listing, e.Amount, e.Token, e.Buyer)
	return nil
}

// Status - the state of a listing's escrow
func (v *Vault) Status(r storage.Reader, listing uint64) (Status, error) {
	e, err := v.Get(r, listing)
	if nil != err {
		return 0, err
	}
	return e.Status, nil
}

// Get - a listing's escrow record
func (v *Vault) Get(r storage.Reader, listing uint64) (*Escrow, error) {
	e, ok := get(r, listing)
	if !ok {
		return nil, fault.ErrEscrowNotFound
	}
	return e, nil
}

func (v *Vault) active(r storage.Reader, listing uint64) (*Escrow, error) {
	e, ok := get(r, listing)
	if !ok {
		return nil, fault.ErrEscrowNotFound
	}
	if Active != e.Status {
		return nil, fault.ErrEscrowNotActive
	}
	return e, nil
}

func get(r storage.Reader, listing uint64) (*Escrow, bool) {
	packed := r.Get(storage.Pool.Escrows, util.KeyFromUint64(listing))
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	e := &Escrow{
		Status: Status(u.Uint64()),
		Amount: amount.Unpack(u),
		Token:  currency.Currency(u.Uint64()),
	}
	buyer := u.Bytes()
	seller := u.Bytes()
	if err := u.Err(); nil != err {
		logger.Panicf("escrow: record for: %d error: %s", listing, err)
	}
	var err error
	if e.Buyer, err = account.FromBytes(buyer); nil != err {
		logger.Panicf("escrow: buyer for: %d error: %s", listing, err)
	}
	if e.Seller, err = account.FromBytes(seller); nil != err {
		logger.Panicf("escrow: seller for: %d error: %s", listing, err)
	}
	return e, true
}

func put(trx storage.Transaction, listing uint64, e *Escrow) {
	packed := util.Packed{}.AppendUint64(uint64(e.Status))
	packed = amount.Pack(packed, e.Amount)
	packed = packed.AppendUint64(uint64(e.Token)).
		AppendBytes(e.Buyer.Bytes()).
		AppendBytes(e.Seller.Bytes())
	trx.Put(storage.Pool.Escrows, util.KeyFromUint64(listing), packed)
}
