// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricefeed

import (
	"context"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/fault"
)

const (
	defaultBinanceInterval = time.Minute
	defaultBinanceMaxAge   = 5 * time.Minute
	defaultBinanceDecimals = 8
	binanceRequestTimeout  = 10 * time.Second
)

// BinanceSource - rates from the Binance spot ticker
//
// symbols maps a token name to its market, e.g. "USDC" to "USDCUSDT";
// tickers are polled in the background and a cached rate older than
// the maximum age is refused
type BinanceSource struct {
	log      *logger.L
	client   *binance.Client
	symbols  map[string]string
	decimals uint32
	interval time.Duration
	maxAge   time.Duration
	cache    rateCache
}

// NewBinanceSource - unauthenticated ticker client
func NewBinanceSource(symbols map[string]string, decimals uint32, interval time.Duration, maxAge time.Duration) *BinanceSource {
	if 0 == decimals {
		decimals = defaultBinanceDecimals
	}
	if interval <= 0 {
		interval = defaultBinanceInterval
	}
	if maxAge <= 0 {
		maxAge = defaultBinanceMaxAge
	}
	markets := make(map[string]string, len(symbols))
	for token, market := range symbols {
		markets[strings.ToUpper(token)] = strings.ToUpper(market)
	}
	return &BinanceSource{
		log:      logger.New("rate-binance"),
		client:   binance.NewClient("", ""),
		symbols:  markets,
		decimals: decimals,
		interval: interval,
		maxAge:   maxAge,
	}
}

// LastPrice - cached ticker rate, fetched on demand if absent
func (s *BinanceSource) LastPrice(ctx context.Context, symbol string) (*Rate, error) {
	r, ok := s.cache.get(symbol)
	if !ok {
		if err := s.fetch(ctx, strings.ToUpper(symbol)); nil != err {
			return nil, err
		}
		r, ok = s.cache.get(symbol)
		if !ok {
			return nil, fault.ErrInvalidCurrency
		}
	}
	if time.Since(time.Unix(int64(r.Timestamp), 0)) > s.maxAge {
		return nil, fault.ErrStalePrice
	}
	return &r, nil
}

// Run - refresh every configured market until shutdown
func (s *BinanceSource) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.refresh()
		}
	}
	log.Info("shutting down…")
}

func (s *BinanceSource) refresh() {
	for token := range s.symbols {
		ctx, cancel := context.WithTimeout(context.Background(), binanceRequestTimeout)
		err := s.fetch(ctx, token)
		cancel()
		if nil != err {
			s.log.Warnf("ticker: %s error: %s", token, err)
		}
	}
}

func (s *BinanceSource) fetch(ctx context.Context, token string) error {
	market, ok := s.symbols[token]
	if !ok {
		return fault.ErrInvalidCurrency
	}
	prices, err := s.client.NewListPricesService().Symbol(market).Do(ctx)
	if nil != err {
		return err
	}
	for _, p := range prices {
		if p.Symbol != market {
			continue
		}
		rate, err := tickerRate(p.Price, s.decimals, uint64(time.Now().Unix()))
		if nil != err {
			return err
		}
		s.cache.put(token, *rate)
		s.log.Debugf("ticker: %s %s = %s", token, market, p.Price)
		return nil
	}
	return fault.ErrInvalidCurrency
}

// convert a ticker price such as "0.99980000" to an integer rate
// with the given decimals, truncating extra digits
func tickerRate(price string, decimals uint32, timestamp uint64) (*Rate, error) {
	d, err := decimal.NewFromString(price)
	if nil != err {
		return nil, fault.ErrInvalidRate
	}
	scaled := d.Shift(int32(decimals)).Truncate(0)
	if err := checkRate(scaled); nil != err {
		return nil, err
	}
	return &Rate{
		Price:     scaled,
		Decimals:  decimals,
		Timestamp: timestamp,
	}, nil
}
