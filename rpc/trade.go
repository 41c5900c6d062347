// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
)

// Trade
// -----

// Trade - purchases, rentals and their settlement
type Trade struct {
	namespace
}

// TradeArguments - a request that names only the listing
type TradeArguments struct {
	Signed
	Id uint64 `json:"id,string"`
}

// AgreementIdReply - the agreement opened by a trade
type AgreementIdReply struct {
	AgreementId uint64 `json:"agreementId,string"`
}

// Purchase - buy a whole listing with the payment held in escrow
func (t *Trade) Purchase(arguments *TradeArguments, reply *AgreementIdReply) error {
	a, err := t.begin("Trade.Purchase", arguments)
	if nil != err {
		return err
	}
	id, err := t.market.Purchase(a, arguments.Signer, arguments.Id)
	if nil != err {
		return err
	}
	reply.AgreementId = id
	return nil
}

// PurchaseAndConfirm - buy a whole listing and settle immediately
func (t *Trade) PurchaseAndConfirm(arguments *TradeArguments, reply *AgreementIdReply) error {
	a, err := t.begin("Trade.PurchaseAndConfirm", arguments)
	if nil != err {
		return err
	}
	id, err := t.market.PurchaseAndConfirm(a, arguments.Signer, arguments.Id)
	if nil != err {
		return err
	}
	reply.AgreementId = id
	return nil
}

// TradeSharesArguments - buy shares from a holder
type TradeSharesArguments struct {
	Signed
	Id     uint64           `json:"id,string"`
	Seller *account.Account `json:"seller"`
	Shares uint64           `json:"shares"`
}

// PurchaseShares - buy part of a listing from the creator or another holder
func (t *Trade) PurchaseShares(arguments *TradeSharesArguments, reply *AgreementIdReply) error {
	a, err := t.begin("Trade.PurchaseShares", arguments)
	if nil != err {
		return err
	}
	if nil == arguments.Seller {
		return fault.ErrInvalidItem
	}
	id, err := t.market.PurchaseShares(a, arguments.Signer, arguments.Seller, arguments.Id, arguments.Shares)
	if nil != err {
		return err
	}
	reply.AgreementId = id
	return nil
}

// TradeRentArguments - payment and period of a lease
type TradeRentArguments struct {
	Signed
	Id       uint64          `json:"id,string"`
	Amount   decimal.Decimal `json:"amount"`
	Duration uint64          `json:"duration"`
}

// Rent - open a lease with the payment held in escrow
func (t *Trade) Rent(arguments *TradeRentArguments, reply *AgreementIdReply) error {
	a, err := t.begin("Trade.Rent", arguments)
	if nil != err {
		return err
	}
	id, err := t.market.Rent(a, arguments.Signer, arguments.Id, arguments.Amount, arguments.Duration)
	if nil != err {
		return err
	}
	reply.AgreementId = id
	return nil
}

// TradeConfirmArguments - the buyer or renter confirms receipt
type TradeConfirmArguments struct {
	Signed
	Id     uint64 `json:"id,string"`
	Rental bool   `json:"rental"`
}

// Confirm - release the escrow to the holders
func (t *Trade) Confirm(arguments *TradeConfirmArguments, reply *StatusReply) error {
	a, err := t.begin("Trade.Confirm", arguments)
	if nil != err {
		return err
	}
	if err := t.market.ConfirmReceipt(a, arguments.Signer, arguments.Id, arguments.Rental); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Cancel - the seller terminates an unconfirmed trade and refunds the payment
func (t *Trade) Cancel(arguments *TradeArguments, reply *StatusReply) error {
	a, err := t.begin("Trade.Cancel", arguments)
	if nil != err {
		return err
	}
	if err := t.market.Cancel(a, arguments.Signer, arguments.Id); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Reclaim - the owner ends a settled lease
func (t *Trade) Reclaim(arguments *TradeArguments, reply *StatusReply) error {
	a, err := t.begin("Trade.Reclaim", arguments)
	if nil != err {
		return err
	}
	if err := t.market.ReclaimOrReturn(a, arguments.Signer, arguments.Id); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}
