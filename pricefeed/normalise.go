// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricefeed

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/storage"
)

const sourceTimeout = 10 * time.Second

// FeedReader - the internal feed as seen by the normaliser
type FeedReader interface {
	Price(r storage.Reader, now uint64) (decimal.Decimal, uint64, error)
}

// Normaliser - convert listing prices into the transfer currency
type Normaliser struct {
	feed   FeedReader
	source RateSource
}

// NewNormaliser - combine the internal feed and an external source
func NewNormaliser(feed FeedReader, source RateSource) *Normaliser {
	return &Normaliser{
		feed:   feed,
		source: source,
	}
}

// Normalise - the amount to transfer for a price quoted in the
// listing currency
//
// when the currencies differ:
//   usd    = value * 10^7 / feed rate
//   result = usd * 10^source decimals / source rate
// each division truncates toward zero; staleness is left to the
// feed and the source
func (n *Normaliser) Normalise(r storage.Reader, listing currency.Currency, transfer currency.Currency, value decimal.Decimal, now uint64) (decimal.Decimal, error) {
	if err := amount.Check(value); nil != err {
		return amount.Zero, err
	}
	if listing == transfer {
		return value, nil
	}

	feedRate, _, err := n.feed.Price(r, now)
	if nil != err {
		return amount.Zero, err
	}
	if err := checkRate(feedRate); nil != err {
		return amount.Zero, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), sourceTimeout)
	defer cancel()
	rate, err := n.source.LastPrice(ctx, transfer.String())
	if nil != err {
		return amount.Zero, err
	}
	if err := checkRate(rate.Price); nil != err {
		return amount.Zero, err
	}

	return Convert(value, feedRate, rate.Price, rate.Decimals)
}

// Convert - the normalisation arithmetic on its own
func Convert(value decimal.Decimal, feedRate decimal.Decimal, sourceRate decimal.Decimal, sourceDecimals uint32) (decimal.Decimal, error) {
	if err := checkRate(feedRate); nil != err {
		return amount.Zero, err
	}
	if err := checkRate(sourceRate); nil != err {
		return amount.Zero, err
	}
	usd, err := amount.MulDiv(value, amount.Pow10(FeedDecimals), feedRate)
	if nil != err {
		return amount.Zero, err
	}
	return amount.MulDiv(usd, amount.Pow10(sourceDecimals), sourceRate)
}
