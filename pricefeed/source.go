// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricefeed

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/background"
	"github.com/bitmark-inc/marketd/fault"
)

// Rate - an external quote as an integer with its own decimals
type Rate struct {
	Price     decimal.Decimal `json:"price"`
	Decimals  uint32          `json:"decimals"`
	Timestamp uint64          `json:"timestamp"`
}

// RateSource - the external oracle for a transfer token's rate
type RateSource interface {
	LastPrice(ctx context.Context, symbol string) (*Rate, error)
}

// SourceConfiguration - choice and settings of the rate source
type SourceConfiguration struct {
	Source   string            `gluamapper:"source" json:"source"`
	Price    string            `gluamapper:"price" json:"price"`
	Decimals uint32            `gluamapper:"decimals" json:"decimals"`
	File     string            `gluamapper:"file" json:"file"`
	Symbols  map[string]string `gluamapper:"symbols" json:"symbols"`
	Interval uint64            `gluamapper:"interval" json:"interval"` // seconds
	MaxAge   uint64            `gluamapper:"max_age" json:"max_age"`   // seconds
}

// NewSource - create the configured rate source
//
// sources that refresh themselves also return a background process
// which the caller must start
func NewSource(configuration *SourceConfiguration) (RateSource, background.Process, error) {
	switch strings.ToLower(configuration.Source) {
	case "", "static":
		price := configuration.Price
		if "" == price {
			price = "10000000"
		}
		decimals := configuration.Decimals
		if 0 == decimals && "" == configuration.Price {
			decimals = FeedDecimals
		}
		rate, err := amount.Parse(price)
		if nil != err {
			return nil, nil, err
		}
		s, err := NewStaticSource(rate, decimals)
		return s, nil, err

	case "file":
		s, err := NewFileSource(configuration.File)
		if nil != err {
			return nil, nil, err
		}
		return s, s, nil

	case "binance":
		s := NewBinanceSource(
			configuration.Symbols,
			configuration.Decimals,
			time.Duration(configuration.Interval)*time.Second,
			time.Duration(configuration.MaxAge)*time.Second,
		)
		return s, s, nil

	default:
		return nil, nil, fault.ErrUnknownRateSource
	}
}

// StaticSource - the same rate for every symbol
type StaticSource struct {
	rate Rate
}

// NewStaticSource - fixed rate source
func NewStaticSource(price decimal.Decimal, decimals uint32) (*StaticSource, error) {
	if err := checkRate(price); nil != err {
		return nil, err
	}
	return &StaticSource{
		rate: Rate{
			Price:    price,
			Decimals: decimals,
		},
	}, nil
}

// LastPrice - the fixed rate stamped with the current time
func (s *StaticSource) LastPrice(ctx context.Context, symbol string) (*Rate, error) {
	r := s.rate
	r.Timestamp = uint64(time.Now().Unix())
	return &r, nil
}

// cache of rates shared by the refreshing sources
type rateCache struct {
	sync.RWMutex
	rates map[string]Rate
}

func (c *rateCache) get(symbol string) (Rate, bool) {
	c.RLock()
	defer c.RUnlock()
	r, ok := c.rates[strings.ToUpper(symbol)]
	return r, ok
}

func (c *rateCache) set(rates map[string]Rate) {
	c.Lock()
	c.rates = rates
	c.Unlock()
}

func (c *rateCache) put(symbol string, rate Rate) {
	c.Lock()
	if nil == c.rates {
		c.rates = make(map[string]Rate)
	}
	c.rates[strings.ToUpper(symbol)] = rate
	c.Unlock()
}
