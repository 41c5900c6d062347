// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pricefeed - settlement price inputs
//
// Feed is the internal USD rate with seven fixed decimals, written
// by a set of authorised updaters; a RateSource supplies the rate of
// the transfer token; Normaliser combines the two to convert a
// listing price into the transfer currency
package pricefeed

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
)

// FeedDecimals - fixed precision of the feed rate
const FeedDecimals = 7

// Config - who may update the feed and how far
type Config struct {
	Admin             *account.Account   `json:"admin"`
	Updaters          []*account.Account `json:"updaters"`
	MinUpdateInterval uint64             `json:"minUpdateInterval"`
	MaxPriceChange    decimal.Decimal    `json:"maxPriceChange"`
}

// Price - the latest rate
type Price struct {
	Rate        decimal.Decimal `json:"rate"`
	Timestamp   uint64          `json:"timestamp"`
	ValidPeriod uint64          `json:"validPeriod"`
}

// Feed - the internal price feed
type Feed struct {
	log *logger.L
}

// NewFeed - create the feed accessor
func NewFeed() *Feed {
	return &Feed{
		log: logger.New("pricefeed"),
	}
}

// Initialise - one-time setup; the admin becomes the only updater
func (f *Feed) Initialise(trx storage.Transaction, a auth.Authoriser, admin *account.Account, initialRate decimal.Decimal, validPeriod uint64, minUpdateInterval uint64, maxPriceChange decimal.Decimal, now uint64) error {
	if err := a.RequireAuth(admin); nil != err {
		return err
	}
	if _, ok := getConfig(trx); ok {
		return fault.ErrAlreadyInitialised
	}
	if err := checkRate(initialRate); nil != err {
		return err
	}
	if err := amount.Check(maxPriceChange); nil != err {
		return err
	}

	putConfig(trx, &Config{
		Admin:             admin,
		Updaters:          []*account.Account{admin},
		MinUpdateInterval: minUpdateInterval,
		MaxPriceChange:    maxPriceChange,
	})
	putPrice(trx, &Price{
		Rate:        initialRate,
		Timestamp:   now,
		ValidPeriod: validPeriod,
	})

	f.log.Infof("initialised: rate: %s admin: %s", initialRate, admin)
	return nil
}

// UpdatePrice - set a new rate
//
// rejected if the previous update was too recent or the rate moves
// by more than the configured percentage
func (f *Feed) UpdatePrice(trx storage.Transaction, a auth.Authoriser, updater *account.Account, newRate decimal.Decimal, now uint64) error {
	if err := a.RequireAuth(updater); nil != err {
		return err
	}
	config, current, err := f.state(trx)
	if nil != err {
		return err
	}
	if !contains(config.Updaters, updater) {
		return fault.ErrNotUpdater
	}
	if err := amount.Check(newRate); nil != err {
		return err
	}
	if !newRate.IsPositive() {
		return fault.ErrInvalidPrice
	}
	if now < current.Timestamp || now-current.Timestamp < config.MinUpdateInterval {
		return fault.ErrUpdateTooFrequent
	}

	change, err := amount.MulDiv(newRate.Sub(current.Rate), amount.New(100), current.Rate)
	if nil != err {
		return err
	}
	if change.Abs().GreaterThan(config.MaxPriceChange) {
		return fault.ErrPriceChangeTooLarge
	}

	current.Rate = newRate
	current.Timestamp = now
	putPrice(trx, current)

	f.log.Infof("update: rate: %s by: %s", newRate, updater)
	return nil
}

// Price - the current rate and when it was set
//
// fails once the validity period has passed
func (f *Feed) Price(r storage.Reader, now uint64) (decimal.Decimal, uint64, error) {
	p, ok := getPrice(r)
	if !ok {
		return amount.Zero, 0, fault.ErrNotInitialised
	}
	if now > p.Timestamp+p.ValidPeriod {
		return amount.Zero, 0, fault.ErrStalePrice
	}
	return p.Rate, p.Timestamp, nil
}

// Config - the feed configuration
func (f *Feed) Config(r storage.Reader) (*Config, error) {
	config, ok := getConfig(r)
	if !ok {
		return nil, fault.ErrNotInitialised
	}
	return config, nil
}

// AddUpdater - admin adds an account to the updater set
func (f *Feed) AddUpdater(trx storage.Transaction, a auth.Authoriser, admin *account.Account, updater *account.Account) error {
	config, err := f.admin(trx, a, admin)
	if nil != err {
		return err
	}
	if !contains(config.Updaters, updater) {
		config.Updaters = append(config.Updaters, updater)
		putConfig(trx, config)
		f.log.Infof("add updater: %s", updater)
	}
	return nil
}

// RemoveUpdater - admin removes an account from the updater set
func (f *Feed) RemoveUpdater(trx storage.Transaction, a auth.Authoriser, admin *account.Account, updater *account.Account) error {
	config, err := f.admin(trx, a, admin)
	if nil != err {
		return err
	}
	for i, u := range config.Updaters {
		if u.Equal(updater) {
			config.Updaters = append(config.Updaters[:i], config.Updaters[i+1:]...)
			putConfig(trx, config)
			f.log.Infof("remove updater: %s", updater)
			break
		}
	}
	return nil
}

// UpdateConfig - admin changes the update limits and validity period
func (f *Feed) UpdateConfig(trx storage.Transaction, a auth.Authoriser, admin *account.Account, minUpdateInterval uint64, maxPriceChange decimal.Decimal, validPeriod uint64) error {
	config, err := f.admin(trx, a, admin)
	if nil != err {
		return err
	}
	if err := amount.Check(maxPriceChange); nil != err {
		return err
	}
	p, ok := getPrice(trx)
	if !ok {
		return fault.ErrNotInitialised
	}

	config.MinUpdateInterval = minUpdateInterval
	config.MaxPriceChange = maxPriceChange
	p.ValidPeriod = validPeriod
	putConfig(trx, config)
	putPrice(trx, p)

	f.log.Infof("config: interval: %d max change: %s valid: %d", minUpdateInterval, maxPriceChange, validPeriod)
	return nil
}

func (f *Feed) state(r storage.Reader) (*Config, *Price, error) {
	config, ok := getConfig(r)
	if !ok {
		return nil, nil, fault.ErrNotInitialised
	}
	p, ok := getPrice(r)
	if !ok {
		return nil, nil, fault.ErrNotInitialised
	}
	return config, p, nil
}

func (f *Feed) admin(r storage.Reader, a auth.Authoriser, admin *account.Account) (*Config, error) {
	if err := a.RequireAuth(admin); nil != err {
		return nil, err
	}
	config, ok := getConfig(r)
	if !ok {
		return nil, fault.ErrNotInitialised
	}
	if !config.Admin.Equal(admin) {
		return nil, fault.ErrNotAuthorised
	}
	return config, nil
}

func checkRate(rate decimal.Decimal) error {
	if err := amount.Check(rate); nil != err {
		return err
	}
	if !rate.IsPositive() {
		return fault.ErrInvalidRate
	}
	return nil
}

func contains(accounts []*account.Account, acc *account.Account) bool {
	for _, a := range accounts {
		if a.Equal(acc) {
			return true
		}
	}
	return false
}
