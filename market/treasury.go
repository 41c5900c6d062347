// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/pricefeed"
	"github.com/bitmark-inc/marketd/storage"
)

// FeedSetup - initial price feed parameters
type FeedSetup struct {
	Rate              decimal.Decimal `json:"rate"`
	ValidPeriod       uint64          `json:"validPeriod"`
	MinUpdateInterval uint64          `json:"minUpdateInterval"`
	MaxPriceChange    decimal.Decimal `json:"maxPriceChange"`
}

// InitialisePriceFeed - one-time setup of the exchange rate
func (m *Market) InitialisePriceFeed(a auth.Authoriser, admin *account.Account, setup *FeedSetup) error {
	return m.update(false, func(op *operation) error {
		err := m.feed.Initialise(op, a, admin, setup.Rate, setup.ValidPeriod, setup.MinUpdateInterval, setup.MaxPriceChange, op.now)
		if nil != err {
			return err
		}
		op.emit(TopicPriceUpdated, &AccountEvent{Account: admin, Amount: setup.Rate})
		return nil
	})
}

// UpdatePrice - an authorised updater posts a new rate
func (m *Market) UpdatePrice(a auth.Authoriser, updater *account.Account, rate decimal.Decimal) error {
	return m.update(false, func(op *operation) error {
		if err := m.feed.UpdatePrice(op, a, updater, rate, op.now); nil != err {
			return err
		}
		op.emit(TopicPriceUpdated, &AccountEvent{Account: updater, Amount: rate})
		return nil
	})
}

// AddPriceUpdater - feed admin grants update rights
func (m *Market) AddPriceUpdater(a auth.Authoriser, admin *account.Account, updater *account.Account) error {
	return m.update(false, func(op *operation) error {
		return m.feed.AddUpdater(op, a, admin, updater)
	})
}

// RemovePriceUpdater - feed admin withdraws update rights
func (m *Market) RemovePriceUpdater(a auth.Authoriser, admin *account.Account, updater *account.Account) error {
	return m.update(false, func(op *operation) error {
		return m.feed.RemoveUpdater(op, a, admin, updater)
	})
}

// UpdatePriceConfig - feed admin changes the update limits
func (m *Market) UpdatePriceConfig(a auth.Authoriser, admin *account.Account, minUpdateInterval uint64, maxPriceChange decimal.Decimal, validPeriod uint64) error {
	return m.update(false, func(op *operation) error {
		return m.feed.UpdateConfig(op, a, admin, minUpdateInterval, maxPriceChange, validPeriod)
	})
}

// Price - current rate and the time it was set
func (m *Market) Price() (decimal.Decimal, uint64, error) {
	return m.feed.Price(storage.Committed, m.clock())
}

// PriceConfig - the feed's limits and updaters
func (m *Market) PriceConfig() (*pricefeed.Config, error) {
	return m.feed.Config(storage.Committed)
}

// IssueTokens - the custodian credits an account
func (m *Market) IssueTokens(a auth.Authoriser, token currency.Currency, to *account.Account, value decimal.Decimal) error {
	return m.update(false, func(op *operation) error {
		if err := m.tokens.Issue(op, a, token, to, value); nil != err {
			return err
		}
		m.log.Infof("issue: %s %s to: %s", value, token, to)
		op.emit(TopicTokenIssued, &AccountEvent{Account: to, Token: token, Amount: value})
		return nil
	})
}

// TokenBalance - an account's token balance
func (m *Market) TokenBalance(token currency.Currency, owner *account.Account) decimal.Decimal {
	return m.tokens.Balance(storage.Committed, token, owner)
}

// Agreement - a single agreement
func (m *Market) Agreement(id uint64) (*agreement.Agreement, error) {
	return m.agreements.Get(storage.Committed, id)
}

// AgreementsOf - agreements an account is party to
func (m *Market) AgreementsOf(acc *account.Account) []uint64 {
	return m.agreements.ForAccount(storage.Committed, acc)
}

// AgreementsFor - agreements opened against a listing
func (m *Market) AgreementsFor(listing uint64) []uint64 {
	return m.agreements.ForListing(storage.Committed, listing)
}

// Escrow - a listing's escrow record
func (m *Market) Escrow(listing uint64) (*escrow.Escrow, error) {
	return m.vault.Get(storage.Committed, listing)
}

// Balance - shares of a listing held by an account
func (m *Market) Balance(listing uint64, owner *account.Account) uint64 {
	return m.ownership.BalanceOf(storage.Committed, listing, owner)
}

// Owners - all holders of a listing's shares
func (m *Market) Owners(listing uint64) []ownership.Holding {
	return m.ownership.Owners(storage.Committed, listing)
}

// HasControl - true if the account holds an unexpired control grant
func (m *Market) HasControl(listing uint64, who *account.Account) bool {
	return m.ownership.HasControl(storage.Committed, listing, who, m.clock())
}
