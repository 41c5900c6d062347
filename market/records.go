// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

var (
	listingCounterKey = []byte("listing")
	settingsKey       = []byte("settings")
)

func getListing(r storage.Reader, id uint64) (*Listing, bool) {
	packed := r.Get(storage.Pool.Listings, util.KeyFromUint64(id))
	if nil == packed {
		return nil, false
	}

	u := util.NewUnpacker(packed)
	l := &Listing{
		Id: id,
	}
	creator := u.Bytes()
	l.ReferenceId = u.String()
	l.MetadataURI = u.String()
	l.Price = amount.Unpack(u)
	l.Duration = u.Uint64()
	l.AllowPurchase = u.Bool()
	l.AllowRent = u.Bool()
	l.Status = Status(u.Uint64())
	l.TotalShares = u.Uint64()
	l.ReservedShares = u.Uint64()
	l.AvailableShares = u.Uint64()
	l.AgreementId = u.Uint64()
	if err := u.Err(); nil != err {
		logger.Panicf("market: listing: %d error: %s", id, err)
	}

	var err error
	if l.Creator, err = account.FromBytes(creator); nil != err {
		logger.Panicf("market: listing: %d creator error: %s", id, err)
	}
	return l, true
}

func putListing(trx storage.Transaction, l *Listing) {
	packed := util.Packed{}.
		AppendBytes(l.Creator.Bytes()).
		AppendString(l.ReferenceId).
		AppendString(l.MetadataURI)
	packed = amount.Pack(packed, l.Price)
	packed = packed.AppendUint64(l.Duration).
		AppendBool(l.AllowPurchase).
		AppendBool(l.AllowRent).
		AppendUint64(uint64(l.Status)).
		AppendUint64(l.TotalShares).
		AppendUint64(l.ReservedShares).
		AppendUint64(l.AvailableShares).
		AppendUint64(l.AgreementId)
	trx.Put(storage.Pool.Listings, util.KeyFromUint64(l.Id), packed)
}

func listingCount(r storage.Reader) uint64 {
	n, _ := r.GetN(storage.Pool.Counters, listingCounterKey)
	return n
}

func getSettings(r storage.Reader) (*Settings, bool) {
	packed := r.Get(storage.Pool.Settings, settingsKey)
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	admin := u.Bytes()
	s := &Settings{
		Currency:     currency.Currency(u.Uint64()),
		PaymentToken: currency.Currency(u.Uint64()),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("market: settings error: %s", err)
	}
	var err error
	if s.Admin, err = account.FromBytes(admin); nil != err {
		logger.Panicf("market: settings admin error: %s", err)
	}
	return s, true
}

func putSettings(trx storage.Transaction, s *Settings) {
	packed := util.Packed{}.
		AppendBytes(s.Admin.Bytes()).
		AppendUint64(uint64(s.Currency)).
		AppendUint64(uint64(s.PaymentToken))
	trx.Put(storage.Pool.Settings, settingsKey, packed)
}

// proceeds - what a pending escrowed sale must put back or pay out
type proceeds struct {
	totalShares     uint64
	availableShares uint64
	holdings        []ownership.Holding
}

func getProceeds(r storage.Reader, listing uint64) (*proceeds, bool) {
	packed := r.Get(storage.Pool.Proceeds, util.KeyFromUint64(listing))
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	p := &proceeds{
		totalShares:     u.Uint64(),
		availableShares: u.Uint64(),
	}
	n := u.Uint64()
	for i := uint64(0); i < n && nil == u.Err(); i += 1 {
		owner := u.Bytes()
		shares := u.Uint64()
		if nil != u.Err() {
			break
		}
		acc, err := account.FromBytes(owner)
		if nil != err {
			logger.Panicf("market: proceeds: %d owner error: %s", listing, err)
		}
		p.holdings = append(p.holdings, ownership.Holding{Owner: acc, Shares: shares})
	}
	if err := u.Err(); nil != err {
		logger.Panicf("market: proceeds: %d error: %s", listing, err)
	}
	return p, true
}

func putProceeds(trx storage.Transaction, listing uint64, p *proceeds) {
	packed := util.Packed{}.
		AppendUint64(p.totalShares).
		AppendUint64(p.availableShares).
		AppendUint64(uint64(len(p.holdings)))
	for _, h := range p.holdings {
		packed = packed.AppendBytes(h.Owner.Bytes()).AppendUint64(h.Shares)
	}
	trx.Put(storage.Pool.Proceeds, util.KeyFromUint64(listing), packed)
}

func deleteProceeds(trx storage.Transaction, listing uint64) {
	trx.Delete(storage.Pool.Proceeds, util.KeyFromUint64(listing))
}
