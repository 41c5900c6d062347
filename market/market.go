// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - listings and the trades that settle against them
//
// every mutating operation runs under one mutex inside a single
// storage transaction that spans the ownership, escrow, agreement,
// dividend and token records; on any error the transaction is
// aborted and nothing is published
package market

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/event"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
)

// Settings - market wide configuration
type Settings struct {
	Admin        *account.Account  `json:"admin"`
	Currency     currency.Currency `json:"currency"`
	PaymentToken currency.Currency `json:"paymentToken"`
}

// Collaborators - the components a market settles through
type Collaborators struct {
	Ownership   Ownership
	Vault       Vault
	Agreements  Agreements
	Distributor Distributor
	Normaliser  Normaliser
	Tokens      Tokens
	Feed        PriceFeed
	Sink        event.Sink
	Clock       func() uint64
}

// Market - the orchestrator
type Market struct {
	sync.Mutex

	log       *logger.L
	custodian *account.Account
	self      auth.Authoriser

	ownership   Ownership
	vault       Vault
	agreements  Agreements
	distributor Distributor
	normaliser  Normaliser
	tokens      Tokens
	feed        PriceFeed
	sink        event.Sink
	clock       func() uint64
}

// New - create a market acting as custodian
func New(custodian *account.Account, c Collaborators) *Market {
	sink := c.Sink
	if nil == sink {
		sink = event.Discard
	}
	clock := c.Clock
	if nil == clock {
		clock = unixNow
	}
	return &Market{
		log:         logger.New("market"),
		custodian:   custodian,
		self:        auth.Trusted(custodian),
		ownership:   c.Ownership,
		vault:       c.Vault,
		agreements:  c.Agreements,
		distributor: c.Distributor,
		normaliser:  c.Normaliser,
		tokens:      c.Tokens,
		feed:        c.Feed,
		sink:        sink,
		clock:       clock,
	}
}

func unixNow() uint64 {
	return uint64(time.Now().Unix())
}

// Custodian - the account holding escrowed and undistributed funds
func (m *Market) Custodian() *account.Account {
	return m.custodian
}

// operation - state shared by the steps of one mutation
type operation struct {
	storage.Transaction
	now      uint64
	settings *Settings
	events   []*event.Event
}

func (op *operation) emit(topic string, payload interface{}) {
	op.events = append(op.events, event.New(topic, payload))
}

// run fn inside one transaction; commit only if it succeeds
func (m *Market) update(requireSettings bool, fn func(op *operation) error) error {
	m.Lock()
	defer m.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		m.log.Errorf("begin transaction error: %s", err)
		return err
	}

	op := &operation{
		Transaction: trx,
		now:         m.clock(),
	}

	if requireSettings {
		s, ok := getSettings(trx)
		if !ok {
			trx.Abort()
			return fault.ErrNotInitialised
		}
		op.settings = s
	}

	if err := fn(op); nil != err {
		trx.Abort()
		m.log.Debugf("aborted: %s", err)
		return err
	}

	if err := trx.Commit(); nil != err {
		m.log.Criticalf("commit error: %s", err)
		return err
	}

	for _, e := range op.events {
		m.log.Debugf("publish: %s id: %s", e.Topic, e.Id)
		m.sink.Publish(e)
	}
	return nil
}

// Initialise - one-time setup of the market
func (m *Market) Initialise(a auth.Authoriser, admin *account.Account, paymentToken currency.Currency) error {
	if err := a.RequireAuth(admin); nil != err {
		return err
	}
	if !paymentToken.IsValid() {
		return fault.ErrInvalidCurrency
	}
	return m.update(false, func(op *operation) error {
		if _, ok := getSettings(op); ok {
			return fault.ErrAlreadyInitialised
		}
		s := &Settings{
			Admin:        admin,
			Currency:     currency.NGNG,
			PaymentToken: paymentToken,
		}
		putSettings(op, s)

		m.log.Infof("initialised: admin: %s payment token: %s", admin, paymentToken)
		op.emit(TopicInitialised, s)
		return nil
	})
}

// Settings - the current market configuration
func (m *Market) Settings() (*Settings, error) {
	s, ok := getSettings(storage.Committed)
	if !ok {
		return nil, fault.ErrNotInitialised
	}
	return s, nil
}

// SetCurrency - change the currency listings are priced in
func (m *Market) SetCurrency(a auth.Authoriser, c currency.Currency) error {
	if err := c.CheckListing(); nil != err {
		return err
	}
	return m.update(true, func(op *operation) error {
		if err := a.RequireAuth(op.settings.Admin); nil != err {
			return err
		}
		op.settings.Currency = c
		putSettings(op, op.settings)
		op.emit(TopicSettingsChanged, op.settings)
		return nil
	})
}

// SetPaymentToken - change the token payments are made in
func (m *Market) SetPaymentToken(a auth.Authoriser, token currency.Currency) error {
	if !token.IsValid() {
		return fault.ErrInvalidCurrency
	}
	return m.update(true, func(op *operation) error {
		if err := a.RequireAuth(op.settings.Admin); nil != err {
			return err
		}
		op.settings.PaymentToken = token
		putSettings(op, op.settings)
		op.emit(TopicSettingsChanged, op.settings)
		return nil
	})
}
