// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/dividend"
)

// event topics
const (
	TopicInitialised     = "market.initialised"
	TopicSettingsChanged = "market.settings"

	TopicListingCreated = "listing.created"
	TopicSharesAdded    = "listing.shares_added"
	TopicListingUpdated = "listing.updated"
	TopicStatusChanged  = "listing.status"
	TopicListingRemoved = "listing.removed"

	TopicPurchase        = "trade.purchase"
	TopicSharesPurchased = "trade.shares_purchased"
	TopicConfirmed       = "trade.confirmed"
	TopicCancelled       = "trade.cancelled"
	TopicReclaimed       = "trade.reclaimed"

	TopicEscrowLocked   = "escrow.locked"
	TopicEscrowReleased = "escrow.released"
	TopicEscrowRefunded = "escrow.refunded"

	TopicDividend     = "dividend.distributed"
	TopicSharesBurned = "ownership.burned"

	TopicPriceUpdated = "price.updated"
	TopicTokenIssued  = "token.issued"
)

// kinds of trade in a purchase event
const (
	TradeBuy  = "buy"
	TradeRent = "rent"
)

// ListingEvent - a listing was created, changed or removed
type ListingEvent struct {
	ListingId   uint64           `json:"listingId"`
	Creator     *account.Account `json:"creator,omitempty"`
	ReferenceId string           `json:"referenceId,omitempty"`
	Status      Status           `json:"status,omitempty"`
	Shares      uint64           `json:"shares,omitempty"`
}

// TradeEvent - a purchase or rental was opened or advanced
type TradeEvent struct {
	ListingId   uint64            `json:"listingId"`
	AgreementId uint64            `json:"agreementId"`
	Kind        string            `json:"kind"`
	Owner       *account.Account  `json:"owner"`
	Buyer       *account.Account  `json:"buyer"`
	Shares      uint64            `json:"shares,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Token       currency.Currency `json:"token"`
	Escrowed    bool              `json:"escrowed"`
}

// EscrowEvent - funds moved into or out of escrow
type EscrowEvent struct {
	ListingId uint64            `json:"listingId"`
	Amount    decimal.Decimal   `json:"amount"`
	Token     currency.Currency `json:"token"`
}

// DividendEvent - proceeds paid out to shareholders
type DividendEvent struct {
	ListingId   uint64            `json:"listingId"`
	Token       currency.Currency `json:"token"`
	Payouts     []dividend.Payout `json:"payouts"`
	Distributed decimal.Decimal   `json:"distributed"`
	Remainder   decimal.Decimal   `json:"remainder"`
}

// AccountEvent - an amount credited to or set by an account
type AccountEvent struct {
	Account *account.Account  `json:"account"`
	Token   currency.Currency `json:"token,omitempty"`
	Amount  decimal.Decimal   `json:"amount"`
}

func dividendEvent(listing uint64, token currency.Currency, r *dividend.Result) *DividendEvent {
	return &DividendEvent{
		ListingId:   listing,
		Token:       token,
		Payouts:     r.Payouts,
		Distributed: r.Distributed,
		Remainder:   r.Remainder,
	}
}
