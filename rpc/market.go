// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/pricefeed"
)

// Market
// ------

// Market - marketplace configuration calls
type Market struct {
	namespace
}

// MarketInitialiseArguments - the signer becomes the admin
type MarketInitialiseArguments struct {
	Signed
	PaymentToken currency.Currency `json:"paymentToken"`
}

// Initialise - one-time setup, the signer becomes the admin
func (m *Market) Initialise(arguments *MarketInitialiseArguments, reply *StatusReply) error {
	a, err := m.begin("Market.Initialise", arguments)
	if nil != err {
		return err
	}
	if err := m.market.Initialise(a, arguments.Signer, arguments.PaymentToken); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// MarketSettingsArguments - empty arguments for settings request
type MarketSettingsArguments struct{}

// Settings - the current configuration
func (m *Market) Settings(_ *MarketSettingsArguments, reply *market.Settings) error {
	if err := m.query(); nil != err {
		return err
	}
	s, err := m.market.Settings()
	if nil != err {
		return err
	}
	*reply = *s
	return nil
}

// MarketCurrencyArguments - new listing or payment currency
type MarketCurrencyArguments struct {
	Signed
	Currency currency.Currency `json:"currency"`
}

// SetCurrency - admin changes the listing currency
func (m *Market) SetCurrency(arguments *MarketCurrencyArguments, reply *StatusReply) error {
	a, err := m.begin("Market.SetCurrency", arguments)
	if nil != err {
		return err
	}
	if err := m.market.SetCurrency(a, arguments.Currency); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// SetPaymentToken - admin changes the payment token
func (m *Market) SetPaymentToken(arguments *MarketCurrencyArguments, reply *StatusReply) error {
	a, err := m.begin("Market.SetPaymentToken", arguments)
	if nil != err {
		return err
	}
	if err := m.market.SetPaymentToken(a, arguments.Currency); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Price
// -----

// Price - the exchange rate feed
type Price struct {
	namespace
}

// PriceGetArguments - empty arguments for price request
type PriceGetArguments struct{}

// PriceGetReply - current rate and feed setup
type PriceGetReply struct {
	Rate      decimal.Decimal   `json:"rate"`
	Timestamp uint64            `json:"timestamp"`
	Config    *pricefeed.Config `json:"config"`
}

// Get - the current rate, failing if it is stale
func (p *Price) Get(_ *PriceGetArguments, reply *PriceGetReply) error {
	if err := p.query(); nil != err {
		return err
	}
	rate, timestamp, err := p.market.Price()
	if nil != err {
		return err
	}
	config, err := p.market.PriceConfig()
	if nil != err {
		return err
	}
	reply.Rate = rate
	reply.Timestamp = timestamp
	reply.Config = config
	return nil
}

// PriceInitialiseArguments - the signer becomes the feed admin
type PriceInitialiseArguments struct {
	Signed
	Setup market.FeedSetup `json:"setup"`
}

// Initialise - one-time setup of the feed
func (p *Price) Initialise(arguments *PriceInitialiseArguments, reply *StatusReply) error {
	a, err := p.begin("Price.Initialise", arguments)
	if nil != err {
		return err
	}
	if err := p.market.InitialisePriceFeed(a, arguments.Signer, &arguments.Setup); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// PriceUpdateArguments - new rate from an authorised updater
type PriceUpdateArguments struct {
	Signed
	Rate decimal.Decimal `json:"rate"`
}

// Update - post a new rate
func (p *Price) Update(arguments *PriceUpdateArguments, reply *StatusReply) error {
	a, err := p.begin("Price.Update", arguments)
	if nil != err {
		return err
	}
	if err := p.market.UpdatePrice(a, arguments.Signer, arguments.Rate); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// PriceUpdaterArguments - feed admin names an updater
type PriceUpdaterArguments struct {
	Signed
	Updater *account.Account `json:"updater"`
	Remove  bool             `json:"remove"`
}

// Updater - add or remove an updater
func (p *Price) Updater(arguments *PriceUpdaterArguments, reply *StatusReply) error {
	a, err := p.begin("Price.Updater", arguments)
	if nil != err {
		return err
	}
	if nil == arguments.Updater {
		return fault.ErrInvalidItem
	}
	if arguments.Remove {
		err = p.market.RemovePriceUpdater(a, arguments.Signer, arguments.Updater)
	} else {
		err = p.market.AddPriceUpdater(a, arguments.Signer, arguments.Updater)
	}
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// PriceConfigArguments - new feed limits
type PriceConfigArguments struct {
	Signed
	MinUpdateInterval uint64          `json:"minUpdateInterval"`
	MaxPriceChange    decimal.Decimal `json:"maxPriceChange"`
	ValidPeriod       uint64          `json:"validPeriod"`
}

// Configure - feed admin changes the update limits
func (p *Price) Configure(arguments *PriceConfigArguments, reply *StatusReply) error {
	a, err := p.begin("Price.Configure", arguments)
	if nil != err {
		return err
	}
	err = p.market.UpdatePriceConfig(a, arguments.Signer, arguments.MinUpdateInterval, arguments.MaxPriceChange, arguments.ValidPeriod)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Token
// -----

// Token - payment token balances
type Token struct {
	namespace
}

// TokenBalanceArguments - whose balance of which token
type TokenBalanceArguments struct {
	Token currency.Currency `json:"token"`
	Owner *account.Account  `json:"owner"`
}

// TokenBalanceReply - the balance in minor units
type TokenBalanceReply struct {
	Token   currency.Currency `json:"token"`
	Balance decimal.Decimal   `json:"balance"`
}

// Balance - an account's token balance
func (t *Token) Balance(arguments *TokenBalanceArguments, reply *TokenBalanceReply) error {
	if err := t.query(); nil != err {
		return err
	}
	if nil == arguments.Owner {
		return fault.ErrInvalidItem
	}
	reply.Token = arguments.Token
	reply.Balance = t.market.TokenBalance(arguments.Token, arguments.Owner)
	return nil
}

// TokenIssueArguments - admin credits an account
type TokenIssueArguments struct {
	Signed
	Token  currency.Currency `json:"token"`
	To     *account.Account  `json:"to"`
	Amount decimal.Decimal   `json:"amount"`
}

// Issue - the market admin has the custodian create token supply
func (t *Token) Issue(arguments *TokenIssueArguments, reply *StatusReply) error {
	a, err := t.begin("Token.Issue", arguments)
	if nil != err {
		return err
	}
	if nil == arguments.To {
		return fault.ErrInvalidItem
	}
	settings, err := t.market.Settings()
	if nil != err {
		return err
	}
	if err := a.RequireAuth(settings.Admin); nil != err {
		return err
	}
	err = t.market.IssueTokens(auth.Trusted(t.market.Custodian()), arguments.Token, arguments.To, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}
