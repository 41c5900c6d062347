// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/mode"
	"github.com/bitmark-inc/marketd/ownership"
)

func TestListingCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	key, creator := fixtures.NewAccount(t)
	l := &Listing{n}

	arguments := &ListingCreateArguments{
		Terms: market.Terms{
			ReferenceId:    "ref-1",
			MetadataURI:    "ipfs://asset",
			Price:          amount.New(1000),
			AllowPurchase:  true,
			TotalShares:    1000,
			ReservedShares: 100,
		},
	}
	sign(t, "Listing.Create", arguments, key)

	m.EXPECT().CreateListing(gomock.Any(), creator, &arguments.Terms).
		DoAndReturn(func(a auth.Authoriser, _ *account.Account, _ *market.Terms) (uint64, error) {
			assert.Nil(t, a.RequireAuth(creator), "creator not authorised")
			return 7, nil
		}).Times(1)

	var reply ListingIdReply
	err := l.Create(arguments, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, uint64(7), reply.Id, "wrong id")
}

func TestMutationsNeedSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, _, ctl := testNamespace(t)
	defer ctl.Finish()

	var status StatusReply
	var id AgreementIdReply
	var created ListingIdReply

	assert.Equal(t, fault.ErrNotAuthorised, (&Listing{n}).Create(&ListingCreateArguments{}, &created), "Listing.Create")
	assert.Equal(t, fault.ErrNotAuthorised, (&Listing{n}).Remove(&ListingRemoveArguments{Id: 1}, &status), "Listing.Remove")
	assert.Equal(t, fault.ErrNotAuthorised, (&Trade{n}).Purchase(&TradeArguments{Id: 1}, &id), "Trade.Purchase")
	assert.Equal(t, fault.ErrNotAuthorised, (&Trade{n}).Confirm(&TradeConfirmArguments{Id: 1}, &status), "Trade.Confirm")
	assert.Equal(t, fault.ErrNotAuthorised, (&Ownership{n}).Burn(&OwnershipBurnArguments{Id: 1, Shares: 1}, &status), "Ownership.Burn")
	assert.Equal(t, fault.ErrNotAuthorised, (&Market{n}).SetCurrency(&MarketCurrencyArguments{Currency: currency.USDC}, &status), "Market.SetCurrency")
	assert.Equal(t, fault.ErrNotAuthorised, (&Price{n}).Update(&PriceUpdateArguments{Rate: amount.New(1)}, &status), "Price.Update")
}

func TestListingList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	l := &Listing{n}

	m.EXPECT().Listings(uint64(3), 2).Return([]*market.Listing{{Id: 3}, {Id: 5}}, nil).Times(1)
	m.EXPECT().Listings(uint64(9), 2).Return([]*market.Listing{}, nil).Times(1)

	var reply ListingListReply
	err := l.List(&ListingListArguments{Start: 3, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 2, len(reply.Listings), "wrong count")
	assert.Equal(t, uint64(6), reply.NextStart, "wrong next start")

	err = l.List(&ListingListArguments{Start: 9, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 0, len(reply.Listings), "wrong count")
	assert.Equal(t, uint64(9), reply.NextStart, "next start moved")

	err = l.List(&ListingListArguments{Start: 1, Count: market.MaximumListings + 1}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "oversized page")
}

func TestListingPrice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	m.EXPECT().ListingPrice(uint64(4)).Return(amount.New(500), nil).Times(1)
	m.EXPECT().Settings().Return(&market.Settings{Currency: currency.NGNG, PaymentToken: currency.USDC}, nil).Times(1)

	var reply ListingPriceReply
	err := (&Listing{n}).Price(&ListingPriceArguments{Id: 4}, &reply)
	assert.Nil(t, err, "wrong Price")
	assert.Equal(t, currency.USDC, reply.Token, "wrong token")
	assert.True(t, amount.New(500).Equal(reply.Amount), "wrong amount")

	m.EXPECT().ListingPrice(uint64(5)).Return(amount.Zero, fault.ErrStalePrice).Times(1)
	err = (&Listing{n}).Price(&ListingPriceArguments{Id: 5}, &reply)
	assert.Equal(t, fault.ErrStalePrice, err, "stale price")
}

func TestTradeCalls(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	key, buyer := fixtures.NewAccount(t)
	_, seller := fixtures.NewAccount(t)
	trade := &Trade{n}

	purchase := &TradeArguments{Id: 2}
	sign(t, "Trade.Purchase", purchase, key)
	m.EXPECT().Purchase(gomock.Any(), buyer, uint64(2)).Return(uint64(11), nil).Times(1)

	var reply AgreementIdReply
	err := trade.Purchase(purchase, &reply)
	assert.Nil(t, err, "wrong Purchase")
	assert.Equal(t, uint64(11), reply.AgreementId, "wrong agreement")

	shares := &TradeSharesArguments{Id: 2, Seller: seller, Shares: 30}
	sign(t, "Trade.PurchaseShares", shares, key)
	m.EXPECT().PurchaseShares(gomock.Any(), buyer, seller, uint64(2), uint64(30)).Return(uint64(12), nil).Times(1)
	err = trade.PurchaseShares(shares, &reply)
	assert.Nil(t, err, "wrong PurchaseShares")
	assert.Equal(t, uint64(12), reply.AgreementId, "wrong agreement")

	noSeller := &TradeSharesArguments{Id: 2, Shares: 30}
	sign(t, "Trade.PurchaseShares", noSeller, key)
	err = trade.PurchaseShares(noSeller, &reply)
	assert.Equal(t, fault.ErrInvalidItem, err, "missing seller")

	rent := &TradeRentArguments{Id: 2, Amount: amount.New(250), Duration: 3600}
	sign(t, "Trade.Rent", rent, key)
	m.EXPECT().Rent(gomock.Any(), buyer, uint64(2), rent.Amount, uint64(3600)).Return(uint64(13), nil).Times(1)
	err = trade.Rent(rent, &reply)
	assert.Nil(t, err, "wrong Rent")
	assert.Equal(t, uint64(13), reply.AgreementId, "wrong agreement")

	confirm := &TradeConfirmArguments{Id: 2, Rental: true}
	sign(t, "Trade.Confirm", confirm, key)
	m.EXPECT().ConfirmReceipt(gomock.Any(), buyer, uint64(2), true).Return(fault.ErrEscrowNotActive).Times(1)

	var status StatusReply
	err = trade.Confirm(confirm, &status)
	assert.Equal(t, fault.ErrEscrowNotActive, err, "wrong Confirm")
	assert.False(t, status.Ok, "status set on failure")
}

func TestTokenIssue(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	adminKey, admin := fixtures.NewAccount(t)
	otherKey, _ := fixtures.NewAccount(t)
	_, custodian := fixtures.NewAccount(t)
	_, receiver := fixtures.NewAccount(t)
	token := &Token{n}

	m.EXPECT().Settings().Return(&market.Settings{Admin: admin}, nil).Times(2)
	m.EXPECT().Custodian().Return(custodian).Times(1)
	m.EXPECT().IssueTokens(gomock.Any(), currency.NGNG, receiver, amount.New(5000)).
		DoAndReturn(func(a auth.Authoriser, _ currency.Currency, _ *account.Account, _ decimal.Decimal) error {
			return a.RequireAuth(custodian)
		}).Times(1)

	var status StatusReply

	refused := &TokenIssueArguments{Token: currency.NGNG, To: receiver, Amount: amount.New(5000)}
	sign(t, "Token.Issue", refused, otherKey)
	err := token.Issue(refused, &status)
	assert.Equal(t, fault.ErrNotAuthorised, err, "non admin issued tokens")

	issue := &TokenIssueArguments{Token: currency.NGNG, To: receiver, Amount: amount.New(5000)}
	sign(t, "Token.Issue", issue, adminKey)
	err = token.Issue(issue, &status)
	assert.Nil(t, err, "wrong Issue")
	assert.True(t, status.Ok, "wrong status")
}

func TestQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	_, holder := fixtures.NewAccount(t)

	m.EXPECT().Balance(uint64(1), holder).Return(uint64(300)).Times(1)
	m.EXPECT().Owners(uint64(1)).Return([]ownership.Holding{{Owner: holder, Shares: 300}}).Times(1)
	m.EXPECT().HasControl(uint64(1), holder).Return(true).Times(1)
	m.EXPECT().AgreementsOf(holder).Return([]uint64{1, 4}).Times(1)
	m.EXPECT().Agreement(uint64(4)).Return(&agreement.Agreement{Id: 4, User: holder, ListingId: 1}, nil).Times(1)

	o := &Ownership{n}

	var balance OwnershipBalanceReply
	err := o.Balance(&OwnershipArguments{Id: 1, Account: holder}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(300), balance.Shares, "wrong shares")

	err = o.Balance(&OwnershipArguments{Id: 1}, &balance)
	assert.Equal(t, fault.ErrInvalidItem, err, "missing account")

	var owners OwnershipOwnersReply
	err = o.Owners(&OwnershipOwnersArguments{Id: 1}, &owners)
	assert.Nil(t, err, "wrong Owners")
	assert.Equal(t, 1, len(owners.Owners), "wrong owner count")

	var control OwnershipControlReply
	err = o.HasControl(&OwnershipArguments{Id: 1, Account: holder}, &control)
	assert.Nil(t, err, "wrong HasControl")
	assert.True(t, control.Control, "wrong control")

	ag := &Agreement{n}

	var list AgreementListReply
	err = ag.ForAccount(&AgreementAccountArguments{Account: holder}, &list)
	assert.Nil(t, err, "wrong ForAccount")
	assert.Equal(t, []uint64{1, 4}, list.Agreements, "wrong agreements")

	var one agreement.Agreement
	err = ag.Get(&AgreementGetArguments{Id: 4}, &one)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(1), one.ListingId, "wrong listing")
}

func TestQueriesDuringShutdown(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, _, ctl := testNamespace(t)
	defer ctl.Finish()

	n.gate.isNormalMode = func(mode.Mode) bool { return false }

	var listing market.Listing
	err := (&Listing{n}).Get(&ListingGetArguments{Id: 1}, &listing)
	assert.Equal(t, fault.ErrNotAvailableDuringShutdown, err, "query during shutdown")
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n, m, ctl := testNamespace(t)
	defer ctl.Finish()

	_, custodian := fixtures.NewAccount(t)
	count := counter.Counter(3)

	node := &Node{
		namespace: n,
		start:     time.Now().Add(-time.Minute),
		version:   "1.2",
		count:     &count,
	}

	m.EXPECT().ListingCount().Return(uint64(17)).Times(1)
	m.EXPECT().Custodian().Return(custodian).Times(1)

	var reply InfoReply
	err := node.Info(&InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connections")
	assert.Equal(t, uint64(17), reply.Listings, "wrong listings")
	assert.Equal(t, custodian, reply.Custodian, "wrong custodian")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
}
