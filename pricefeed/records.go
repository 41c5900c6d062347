// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricefeed

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

var (
	configKey = []byte("config")
	priceKey  = []byte("price")
)

func getConfig(r storage.Reader) (*Config, bool) {
	packed := r.Get(storage.Pool.PriceFeed, configKey)
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	admin, err := account.FromBytes(u.Bytes())
	if nil != err {
		logger.Panicf("pricefeed: admin error: %s", err)
	}
	config := &Config{
		Admin: admin,
	}
	n := u.Uint64()
	for i := uint64(0); i < n && nil == u.Err(); i += 1 {
		updater, err := account.FromBytes(u.Bytes())
		if nil != err {
			logger.Panicf("pricefeed: updater error: %s", err)
		}
		config.Updaters = append(config.Updaters, updater)
	}
	config.MinUpdateInterval = u.Uint64()
	config.MaxPriceChange = amount.Unpack(u)
	if err := u.Err(); nil != err {
		logger.Panicf("pricefeed: config error: %s", err)
	}
	return config, true
}

func putConfig(trx storage.Transaction, config *Config) {
	packed := util.Packed{}.
		AppendBytes(config.Admin.Bytes()).
		AppendUint64(uint64(len(config.Updaters)))
	for _, u := range config.Updaters {
		packed = packed.AppendBytes(u.Bytes())
	}
	packed = packed.AppendUint64(config.MinUpdateInterval)
	packed = amount.Pack(packed, config.MaxPriceChange)
	trx.Put(storage.Pool.PriceFeed, configKey, packed)
}

func getPrice(r storage.Reader) (*Price, bool) {
	packed := r.Get(storage.Pool.PriceFeed, priceKey)
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	p := &Price{
		Rate:        amount.Unpack(u),
		Timestamp:   u.Uint64(),
		ValidPeriod: u.Uint64(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("pricefeed: price error: %s", err)
	}
	return p, true
}

func putPrice(trx storage.Transaction, p *Price) {
	packed := amount.Pack(util.Packed{}, p.Rate).
		AppendUint64(p.Timestamp).
		AppendUint64(p.ValidPeriod)
	trx.Put(storage.Pool.PriceFeed, priceKey, packed)
}
