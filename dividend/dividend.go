// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dividend - pro rata payout of sale proceeds
//
// each owner receives payment * shares / total shares, truncated
// toward zero; the remainder, at most one minor unit per owner less
// one, stays with the custodian
package dividend

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/storage"
)

// Payments - the fungible transfer primitive
type Payments interface {
	Transfer(trx storage.Transaction, a auth.Authoriser, token currency.Currency, from *account.Account, to *account.Account, value decimal.Decimal) error
}

// Holdings - current share ownership
type Holdings interface {
	Owners(r storage.Reader, asset uint64) []ownership.Holding
	TotalSupply(r storage.Reader, asset uint64) uint64
}

// Payout - amount paid to one owner
type Payout struct {
	Owner  *account.Account `json:"owner"`
	Amount decimal.Decimal  `json:"amount"`
}

// Result - outcome of one distribution
type Result struct {
	Payouts     []Payout        `json:"payouts"`
	Distributed decimal.Decimal `json:"distributed"`
	Remainder   decimal.Decimal `json:"remainder"`
}

// Distributor - pays proceeds held by the custodian to owners
type Distributor struct {
	log       *logger.L
	custodian *account.Account
	payments  Payments
	holdings  Holdings
}

// New - create a distributor paying from the custodian account
func New(custodian *account.Account, payments Payments, holdings Holdings) *Distributor {
	return &Distributor{
		log:       logger.New("dividend"),
		custodian: custodian,
		payments:  payments,
		holdings:  holdings,
	}
}

// Distribute - pay a listing's current owners
//
// a listing without shares pays everything to its owner of record,
// or to the fallback account if it has none
func (d *Distributor) Distribute(trx storage.Transaction, a auth.Authoriser, token currency.Currency, listing uint64, payment decimal.Decimal, fallback *account.Account) (*Result, error) {
	holdings := d.holdings.Owners(trx, listing)
	total := d.holdings.TotalSupply(trx, listing)
	return d.DistributeHoldings(trx, a, token, holdings, total, payment, fallback)
}

// DistributeHoldings - pay over an explicit set of holdings
//
// with no shares the single zero share holding is the owner of record
func (d *Distributor) DistributeHoldings(trx storage.Transaction, a auth.Authoriser, token currency.Currency, holdings []ownership.Holding, totalShares uint64, payment decimal.Decimal, fallback *account.Account) (*Result, error) {
	if err := a.RequireAuth(d.custodian); nil != err {
		return nil, err
	}

	var result *Result
	if 0 == totalShares {
		payee := fallback
		if 1 == len(holdings) {
			payee = holdings[0].Owner
		}
		if nil == payee {
			return nil, fault.ErrNoSharesToDistribute
		}
		if err := checkPayment(payment); nil != err {
			return nil, err
		}
		result = &Result{
			Payouts:     []Payout{{Owner: payee, Amount: payment}},
			Distributed: payment,
			Remainder:   amount.Zero,
		}
	} else {
		var err error
		result, err = Split(holdings, totalShares, payment)
		if nil != err {
			return nil, err
		}
	}

	for _, p := range result.Payouts {
		if !p.Amount.IsPositive() {
			continue
		}
		err := d.payments.Transfer(trx, a, token, d.custodian, p.Owner, p.Amount)
		if nil != err {
			return nil, err
		}
	}

	d.log.Infof("distribute: %s %s to: %d owners remainder: %s", result.Distributed, token, len(result.Payouts), result.Remainder)
	return result, nil
}

// Split - compute the payouts without paying
//
// owners whose share truncates to zero are omitted
func Split(holdings []ownership.Holding, totalShares uint64, payment decimal.Decimal) (*Result, error) {
	if err := checkPayment(payment); nil != err {
		return nil, err
	}
	if 0 == totalShares {
		return nil, fault.ErrNoSharesToDistribute
	}

	divisor := amount.FromUint64(totalShares)

	result := &Result{
		Payouts:     make([]Payout, 0, len(holdings)),
		Distributed: amount.Zero,
	}
	for _, h := range holdings {
		share, err := amount.MulDiv(payment, amount.FromUint64(h.Shares), divisor)
		if nil != err {
			return nil, err
		}
		if !share.IsPositive() {
			continue
		}
		result.Payouts = append(result.Payouts, Payout{Owner: h.Owner, Amount: share})
		result.Distributed = result.Distributed.Add(share)
	}
	result.Remainder = payment.Sub(result.Distributed)
	return result, nil
}

func checkPayment(payment decimal.Decimal) error {
	if err := amount.Check(payment); nil != err {
		return err
	}
	if !payment.IsPositive() {
		return fault.ErrInvalidAmount
	}
	return nil
}
