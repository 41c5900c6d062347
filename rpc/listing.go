// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/market"
)

// Listing
// -------

// Listing - type for the RPC
type Listing struct {
	namespace
}

// ListingCreateArguments - terms of a new listing, the signer is the creator
type ListingCreateArguments struct {
	Signed
	Terms market.Terms `json:"terms"`
}

// ListingIdReply - the id of the listing just created
type ListingIdReply struct {
	Id uint64 `json:"id,string"`
}

// Create - register a listing and mint its shares to the signer
func (l *Listing) Create(arguments *ListingCreateArguments, reply *ListingIdReply) error {
	a, err := l.begin("Listing.Create", arguments)
	if nil != err {
		return err
	}
	id, err := l.market.CreateListing(a, arguments.Signer, &arguments.Terms)
	if nil != err {
		return err
	}
	l.log.Infof("Listing.Create: id: %d", id)
	reply.Id = id
	return nil
}

// ListingSharesArguments - share structure for a listing created without one
type ListingSharesArguments struct {
	Signed
	Id       uint64 `json:"id,string"`
	Shares   uint64 `json:"shares"`
	Reserved uint64 `json:"reserved"`
}

// AddShares - establish the share structure
func (l *Listing) AddShares(arguments *ListingSharesArguments, reply *StatusReply) error {
	a, err := l.begin("Listing.AddShares", arguments)
	if nil != err {
		return err
	}
	if err := l.market.AddShares(a, arguments.Signer, arguments.Id, arguments.Shares, arguments.Reserved); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ListingUpdateArguments - new terms for an existing listing
type ListingUpdateArguments struct {
	Signed
	Id     uint64         `json:"id,string"`
	Update market.Update `json:"update"`
}

// Update - the creator changes the terms
func (l *Listing) Update(arguments *ListingUpdateArguments, reply *StatusReply) error {
	a, err := l.begin("Listing.Update", arguments)
	if nil != err {
		return err
	}
	if err := l.market.UpdateListing(a, arguments.Id, &arguments.Update); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ListingStatusArguments - admin override of a listing status
type ListingStatusArguments struct {
	Signed
	Id     uint64        `json:"id,string"`
	Status market.Status `json:"status"`
}

// SetStatus - admin sets the status directly
func (l *Listing) SetStatus(arguments *ListingStatusArguments, reply *StatusReply) error {
	a, err := l.begin("Listing.SetStatus", arguments)
	if nil != err {
		return err
	}
	if err := l.market.SetListingStatus(a, arguments.Id, arguments.Status); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ListingRemoveArguments - admin deletes a listing record
type ListingRemoveArguments struct {
	Signed
	Id uint64 `json:"id,string"`
}

// Remove - admin removes a listing
func (l *Listing) Remove(arguments *ListingRemoveArguments, reply *StatusReply) error {
	a, err := l.begin("Listing.Remove", arguments)
	if nil != err {
		return err
	}
	if err := l.market.RemoveListing(a, arguments.Id); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ListingGetArguments - which listing
type ListingGetArguments struct {
	Id uint64 `json:"id,string"`
}

// Get - a single listing
func (l *Listing) Get(arguments *ListingGetArguments, reply *market.Listing) error {
	if err := l.query(); nil != err {
		return err
	}
	listing, err := l.market.Listing(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *listing
	return nil
}

// ListingListArguments - a page of listings
type ListingListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListingListReply - the page and where the next one starts
type ListingListReply struct {
	Listings  []*market.Listing `json:"listings"`
	NextStart uint64            `json:"nextStart,string"`
}

// List - listings in id order, removed ones skipped
func (l *Listing) List(arguments *ListingListArguments, reply *ListingListReply) error {
	if err := rateLimitN(l.limiter, arguments.Count, market.MaximumListings); nil != err {
		return err
	}
	if err := l.gate.available(); nil != err {
		return err
	}

	listings, err := l.market.Listings(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	next := arguments.Start
	if n := len(listings); n > 0 {
		next = listings[n-1].Id + 1
	}
	reply.Listings = listings
	reply.NextStart = next
	return nil
}

// ListingPriceArguments - which listing
type ListingPriceArguments struct {
	Id uint64 `json:"id,string"`
}

// ListingPriceReply - a listing price converted to the payment token
type ListingPriceReply struct {
	Id     uint64            `json:"id,string"`
	Token  currency.Currency `json:"token"`
	Amount decimal.Decimal   `json:"amount"`
}

// Price - the listing price in the payment token
func (l *Listing) Price(arguments *ListingPriceArguments, reply *ListingPriceReply) error {
	if err := l.query(); nil != err {
		return err
	}
	value, err := l.market.ListingPrice(arguments.Id)
	if nil != err {
		return err
	}
	settings, err := l.market.Settings()
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Token = settings.PaymentToken
	reply.Amount = value
	return nil
}
