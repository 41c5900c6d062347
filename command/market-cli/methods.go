// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/bitmark-inc/marketd/rpc"
)

// argument constructors for every client RPC method
var methods = map[string]func() interface{}{
	"Node.Info": func() interface{} { return &rpc.InfoArguments{} },

	"Market.Initialise":      func() interface{} { return &rpc.MarketInitialiseArguments{} },
	"Market.Settings":        func() interface{} { return &rpc.MarketSettingsArguments{} },
	"Market.SetCurrency":     func() interface{} { return &rpc.MarketCurrencyArguments{} },
	"Market.SetPaymentToken": func() interface{} { return &rpc.MarketCurrencyArguments{} },

	"Listing.Create":    func() interface{} { return &rpc.ListingCreateArguments{} },
	"Listing.AddShares": func() interface{} { return &rpc.ListingSharesArguments{} },
	"Listing.Update":    func() interface{} { return &rpc.ListingUpdateArguments{} },
	"Listing.SetStatus": func() interface{} { return &rpc.ListingStatusArguments{} },
	"Listing.Remove":    func() interface{} { return &rpc.ListingRemoveArguments{} },
	"Listing.Get":       func() interface{} { return &rpc.ListingGetArguments{} },
	"Listing.List":      func() interface{} { return &rpc.ListingListArguments{} },
	"Listing.Price":     func() interface{} { return &rpc.ListingPriceArguments{} },

	"Trade.Purchase":           func() interface{} { return &rpc.TradeArguments{} },
	"Trade.PurchaseAndConfirm": func() interface{} { return &rpc.TradeArguments{} },
	"Trade.PurchaseShares":     func() interface{} { return &rpc.TradeSharesArguments{} },
	"Trade.Rent":               func() interface{} { return &rpc.TradeRentArguments{} },
	"Trade.Confirm":            func() interface{} { return &rpc.TradeConfirmArguments{} },
	"Trade.Cancel":             func() interface{} { return &rpc.TradeArguments{} },
	"Trade.Reclaim":            func() interface{} { return &rpc.TradeArguments{} },

	"Agreement.Get":        func() interface{} { return &rpc.AgreementGetArguments{} },
	"Agreement.ForAccount": func() interface{} { return &rpc.AgreementAccountArguments{} },
	"Agreement.ForListing": func() interface{} { return &rpc.AgreementListingArguments{} },

	"Escrow.Get": func() interface{} { return &rpc.EscrowGetArguments{} },

	"Ownership.Balance":    func() interface{} { return &rpc.OwnershipArguments{} },
	"Ownership.Owners":     func() interface{} { return &rpc.OwnershipOwnersArguments{} },
	"Ownership.HasControl": func() interface{} { return &rpc.OwnershipArguments{} },
	"Ownership.Burn":       func() interface{} { return &rpc.OwnershipBurnArguments{} },

	"Price.Get":        func() interface{} { return &rpc.PriceGetArguments{} },
	"Price.Initialise": func() interface{} { return &rpc.PriceInitialiseArguments{} },
	"Price.Update":     func() interface{} { return &rpc.PriceUpdateArguments{} },
	"Price.Updater":    func() interface{} { return &rpc.PriceUpdaterArguments{} },
	"Price.Configure":  func() interface{} { return &rpc.PriceConfigArguments{} },

	"Token.Balance": func() interface{} { return &rpc.TokenBalanceArguments{} },
	"Token.Issue":   func() interface{} { return &rpc.TokenIssueArguments{} },
}

// sorted method names
func methodNames() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
