// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/pricefeed"
)

//go:generate mockgen -destination mocks/marketplace.go -package mocks github.com/bitmark-inc/marketd/rpc Marketplace

// Marketplace - the orchestrator operations reachable over RPC
type Marketplace interface {
	Custodian() *account.Account

	Initialise(auth.Authoriser, *account.Account, currency.Currency) error
	Settings() (*market.Settings, error)
	SetCurrency(auth.Authoriser, currency.Currency) error
	SetPaymentToken(auth.Authoriser, currency.Currency) error

	CreateListing(auth.Authoriser, *account.Account, *market.Terms) (uint64, error)
	AddShares(auth.Authoriser, *account.Account, uint64, uint64, uint64) error
	UpdateListing(auth.Authoriser, uint64, *market.Update) error
	SetListingStatus(auth.Authoriser, uint64, market.Status) error
	RemoveListing(auth.Authoriser, uint64) error
	BurnShares(auth.Authoriser, *account.Account, uint64, uint64) error
	Listing(uint64) (*market.Listing, error)
	ListingCount() uint64
	Listings(uint64, int) ([]*market.Listing, error)
	ListingPrice(uint64) (decimal.Decimal, error)

	Purchase(auth.Authoriser, *account.Account, uint64) (uint64, error)
	PurchaseAndConfirm(auth.Authoriser, *account.Account, uint64) (uint64, error)
	PurchaseShares(auth.Authoriser, *account.Account, *account.Account, uint64, uint64) (uint64, error)
	Rent(auth.Authoriser, *account.Account, uint64, decimal.Decimal, uint64) (uint64, error)
	ConfirmReceipt(auth.Authoriser, *account.Account, uint64, bool) error
	Cancel(auth.Authoriser, *account.Account, uint64) error
	ReclaimOrReturn(auth.Authoriser, *account.Account, uint64) error

	Agreement(uint64) (*agreement.Agreement, error)
	AgreementsOf(*account.Account) []uint64
	AgreementsFor(uint64) []uint64
	Escrow(uint64) (*escrow.Escrow, error)
	Balance(uint64, *account.Account) uint64
	Owners(uint64) []ownership.Holding
	HasControl(uint64, *account.Account) bool

	InitialisePriceFeed(auth.Authoriser, *account.Account, *market.FeedSetup) error
	UpdatePrice(auth.Authoriser, *account.Account, decimal.Decimal) error
	AddPriceUpdater(auth.Authoriser, *account.Account, *account.Account) error
	RemovePriceUpdater(auth.Authoriser, *account.Account, *account.Account) error
	UpdatePriceConfig(auth.Authoriser, *account.Account, uint64, decimal.Decimal, uint64) error
	Price() (decimal.Decimal, uint64, error)
	PriceConfig() (*pricefeed.Config, error)

	IssueTokens(auth.Authoriser, currency.Currency, *account.Account, decimal.Decimal) error
	TokenBalance(currency.Currency, *account.Account) decimal.Decimal
}

var _ Marketplace = (*market.Market)(nil)
