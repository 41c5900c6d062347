// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/dividend"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/event"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/pricefeed"
	"github.com/bitmark-inc/marketd/token"
)

const (
	startTime = uint64(1600000000)
	funds     = int64(10000)
)

type recorder struct {
	events []*event.Event
}

func (r *recorder) Publish(e *event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) topics() []string {
	topics := make([]string, 0, len(r.events))
	for _, e := range r.events {
		topics = append(topics, e.Topic)
	}
	return topics
}

func (r *recorder) reset() {
	r.events = nil
}

type testMarket struct {
	m         *market.Market
	now       uint64
	sink      *recorder
	custodian *account.Account
	vault     *account.Account
	admin     *account.Account
	creator   *account.Account
	buyer     *account.Account
	other     *account.Account
}

// a fresh market without settings
func newMarket(t *testing.T) *testMarket {
	fixtures.SetupTestDatabase(t)

	_, custodian := fixtures.NewAccount(t)
	_, vaultAccount := fixtures.NewAccount(t)
	_, admin := fixtures.NewAccount(t)
	_, creator := fixtures.NewAccount(t)
	_, buyer := fixtures.NewAccount(t)
	_, other := fixtures.NewAccount(t)

	source, err := pricefeed.NewStaticSource(decimal.NewFromInt(10000000), 7)
	if nil != err {
		t.Fatalf("static source error: %s", err)
	}

	tokens := token.New(custodian)
	shares := ownership.New(custodian)
	feed := pricefeed.NewFeed()

	tm := &testMarket{
		now:       startTime,
		sink:      &recorder{},
		custodian: custodian,
		vault:     vaultAccount,
		admin:     admin,
		creator:   creator,
		buyer:     buyer,
		other:     other,
	}
	tm.m = market.New(custodian, market.Collaborators{
		Ownership:   shares,
		Vault:       escrow.New(custodian, vaultAccount, tokens),
		Agreements:  agreement.New(custodian),
		Distributor: dividend.New(custodian, tokens, shares),
		Normaliser:  pricefeed.NewNormaliser(feed, source),
		Tokens:      tokens,
		Feed:        feed,
		Sink:        tm.sink,
		Clock:       func() uint64 { return tm.now },
	})
	return tm
}

// an initialised market with funded buyer and other accounts
func setup(t *testing.T) *testMarket {
	tm := newMarket(t)
	if err := tm.m.Initialise(auth.Trusted(tm.admin), tm.admin, currency.NGNG); nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	for _, acc := range []*account.Account{tm.buyer, tm.other} {
		err := tm.m.IssueTokens(auth.Trusted(tm.custodian), currency.NGNG, acc, amount.New(funds))
		if nil != err {
			t.Fatalf("issue error: %s", err)
		}
	}
	tm.sink.reset()
	return tm
}

func (tm *testMarket) list(t *testing.T, terms *market.Terms) uint64 {
	id, err := tm.m.CreateListing(auth.Trusted(tm.creator), tm.creator, terms)
	if nil != err {
		t.Fatalf("create listing error: %s", err)
	}
	return id
}

func (tm *testMarket) listing(t *testing.T, id uint64) *market.Listing {
	l, err := tm.m.Listing(id)
	if nil != err {
		t.Fatalf("listing: %d error: %s", id, err)
	}
	return l
}

func (tm *testMarket) balance(acc *account.Account) decimal.Decimal {
	return tm.m.TokenBalance(currency.NGNG, acc)
}

// holdings must account for exactly the listing's total shares
func (tm *testMarket) conserved(t *testing.T, id uint64) {
	total := uint64(0)
	for _, h := range tm.m.Owners(id) {
		total += h.Shares
	}
	assert.Equal(t, tm.listing(t, id).TotalShares, total, "shares not conserved")
}

func saleTerms(price int64, total uint64, reserved uint64) *market.Terms {
	return &market.Terms{
		ReferenceId:    "ref-1",
		MetadataURI:    "ipfs://asset",
		Price:          amount.New(price),
		Duration:       86400,
		AllowPurchase:  true,
		AllowRent:      true,
		TotalShares:    total,
		ReservedShares: reserved,
	}
}
