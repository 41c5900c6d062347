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
	"github.com/bitmark-inc/marketd/dividend"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/pricefeed"
	"github.com/bitmark-inc/marketd/storage"
)

// Ownership - the share ledger
type Ownership interface {
	Mint(trx storage.Transaction, a auth.Authoriser, owner *account.Account, asset uint64, shares uint64, uri string) error
	TransferAll(trx storage.Transaction, a auth.Authoriser, from *account.Account, to *account.Account, asset uint64) error
	TransferShares(trx storage.Transaction, a auth.Authoriser, from *account.Account, to *account.Account, asset uint64, shares uint64) (bool, error)
	Burn(trx storage.Transaction, a auth.Authoriser, owner *account.Account, asset uint64, shares uint64) (bool, error)
	Restore(trx storage.Transaction, a auth.Authoriser, asset uint64, holdings []ownership.Holding) error
	GrantControl(trx storage.Transaction, a auth.Authoriser, asset uint64, renter *account.Account, endTime uint64) error
	RevokeControl(trx storage.Transaction, a auth.Authoriser, asset uint64, renter *account.Account) error

	BalanceOf(r storage.Reader, asset uint64, owner *account.Account) uint64
	Owners(r storage.Reader, asset uint64) []ownership.Holding
	HasControl(r storage.Reader, asset uint64, who *account.Account, now uint64) bool
	IsSoleOwner(r storage.Reader, asset uint64, owner *account.Account) bool
}

// Vault - escrowed payments keyed by listing
type Vault interface {
	Account() *account.Account
	Lock(trx storage.Transaction, a auth.Authoriser, listing uint64, seller *account.Account, buyer *account.Account, token currency.Currency, value decimal.Decimal) error
	Release(trx storage.Transaction, a auth.Authoriser, listing uint64) (decimal.Decimal, error)
	Refund(trx storage.Transaction, a auth.Authoriser, listing uint64) error
	Get(r storage.Reader, listing uint64) (*escrow.Escrow, error)
}

// Agreements - the agreement state machine
type Agreements interface {
	Create(trx storage.Transaction, a auth.Authoriser, listing uint64, user *account.Account, owner *account.Account, shares uint64, isRental bool, duration uint64, now uint64) (uint64, error)
	OwnerFulfilled(trx storage.Transaction, a auth.Authoriser, id uint64) error
	Complete(trx storage.Transaction, a auth.Authoriser, id uint64, caller *account.Account) error
	Terminate(trx storage.Transaction, a auth.Authoriser, id uint64, caller *account.Account) error

	Get(r storage.Reader, id uint64) (*agreement.Agreement, error)
	ForAccount(r storage.Reader, acc *account.Account) []uint64
	ForListing(r storage.Reader, listing uint64) []uint64
}

// Distributor - pays proceeds out to shareholders
type Distributor interface {
	Distribute(trx storage.Transaction, a auth.Authoriser, token currency.Currency, listing uint64, payment decimal.Decimal, fallback *account.Account) (*dividend.Result, error)
	DistributeHoldings(trx storage.Transaction, a auth.Authoriser, token currency.Currency, holdings []ownership.Holding, totalShares uint64, payment decimal.Decimal, fallback *account.Account) (*dividend.Result, error)
}

// Normaliser - converts listing prices into the payment token
type Normaliser interface {
	Normalise(r storage.Reader, listing currency.Currency, transfer currency.Currency, value decimal.Decimal, now uint64) (decimal.Decimal, error)
}

// Tokens - payment token balances
type Tokens interface {
	Transfer(trx storage.Transaction, a auth.Authoriser, token currency.Currency, from *account.Account, to *account.Account, value decimal.Decimal) error
	Issue(trx storage.Transaction, a auth.Authoriser, token currency.Currency, to *account.Account, value decimal.Decimal) error
	Balance(r storage.Reader, token currency.Currency, owner *account.Account) decimal.Decimal
}

// PriceFeed - the on-ledger exchange rate
type PriceFeed interface {
	Initialise(trx storage.Transaction, a auth.Authoriser, admin *account.Account, initialRate decimal.Decimal, validPeriod uint64, minUpdateInterval uint64, maxPriceChange decimal.Decimal, now uint64) error
	UpdatePrice(trx storage.Transaction, a auth.Authoriser, updater *account.Account, newRate decimal.Decimal, now uint64) error
	AddUpdater(trx storage.Transaction, a auth.Authoriser, admin *account.Account, updater *account.Account) error
	RemoveUpdater(trx storage.Transaction, a auth.Authoriser, admin *account.Account, updater *account.Account) error
	UpdateConfig(trx storage.Transaction, a auth.Authoriser, admin *account.Account, minUpdateInterval uint64, maxPriceChange decimal.Decimal, validPeriod uint64) error

	Price(r storage.Reader, now uint64) (decimal.Decimal, uint64, error)
	Config(r storage.Reader) (*pricefeed.Config, error)
}
