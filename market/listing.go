// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

// MaximumListings - largest page returned by Listings
const MaximumListings = 100

// Listing - an asset offered for sale or rent
type Listing struct {
	Id              uint64           `json:"id"`
	Creator         *account.Account `json:"creator"`
	ReferenceId     string           `json:"referenceId"`
	MetadataURI     string           `json:"metadataURI"`
	Price           decimal.Decimal  `json:"price"`
	Duration        uint64           `json:"duration"`
	AllowPurchase   bool             `json:"allowPurchase"`
	AllowRent       bool             `json:"allowRent"`
	Status          Status           `json:"status"`
	TotalShares     uint64           `json:"totalShares"`
	ReservedShares  uint64           `json:"reservedShares"`
	AvailableShares uint64           `json:"availableShares"`
	AgreementId     uint64           `json:"agreementId"`
}

// Terms - the creator supplied part of a listing
type Terms struct {
	ReferenceId    string          `json:"referenceId"`
	MetadataURI    string          `json:"metadataURI"`
	Price          decimal.Decimal `json:"price"`
	Duration       uint64          `json:"duration"`
	AllowPurchase  bool            `json:"allowPurchase"`
	AllowRent      bool            `json:"allowRent"`
	TotalShares    uint64          `json:"totalShares"`
	ReservedShares uint64          `json:"reservedShares"`
}

// Update - the fields a creator may change after listing
type Update struct {
	ReferenceId   string          `json:"referenceId"`
	Price         decimal.Decimal `json:"price"`
	Duration      uint64          `json:"duration"`
	AllowPurchase bool            `json:"allowPurchase"`
	AllowRent     bool            `json:"allowRent"`
}

func checkPrice(price decimal.Decimal) error {
	if err := amount.Check(price); nil != err {
		return err
	}
	if price.IsNegative() {
		return fault.ErrInvalidPrice
	}
	return nil
}

// fetch a listing within a mutation
func (op *operation) listing(id uint64) (*Listing, error) {
	l, ok := getListing(op, id)
	if !ok {
		return nil, fault.ErrListingNotFound
	}
	return l, nil
}

// CreateListing - register a new listing and mint its shares to the creator
func (m *Market) CreateListing(a auth.Authoriser, creator *account.Account, terms *Terms) (uint64, error) {
	if err := a.RequireAuth(creator); nil != err {
		return 0, err
	}
	if err := checkPrice(terms.Price); nil != err {
		return 0, err
	}
	if terms.ReservedShares > terms.TotalShares {
		return 0, fault.ErrInvalidSharesDistribution
	}

	id := uint64(0)
	err := m.update(true, func(op *operation) error {
		id = listingCount(op) + 1

		l := &Listing{
			Id:              id,
			Creator:         creator,
			ReferenceId:     terms.ReferenceId,
			MetadataURI:     terms.MetadataURI,
			Price:           terms.Price,
			Duration:        terms.Duration,
			AllowPurchase:   terms.AllowPurchase,
			AllowRent:       terms.AllowRent,
			Status:          Available,
			TotalShares:     terms.TotalShares,
			ReservedShares:  terms.ReservedShares,
			AvailableShares: terms.TotalShares - terms.ReservedShares,
		}

		if err := m.ownership.Mint(op, m.self, creator, id, terms.TotalShares, terms.MetadataURI); nil != err {
			return err
		}
		putListing(op, l)
		op.PutN(storage.Pool.Counters, listingCounterKey, id)

		m.log.Infof("create listing: %d creator: %s shares: %d", id, creator, terms.TotalShares)
		op.emit(TopicListingCreated, &ListingEvent{
			ListingId:   id,
			Creator:     creator,
			ReferenceId: terms.ReferenceId,
			Status:      Available,
			Shares:      terms.TotalShares,
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// AddShares - give a listing created without shares its share structure
func (m *Market) AddShares(a auth.Authoriser, creator *account.Account, id uint64, shares uint64, reserved uint64) error {
	if err := a.RequireAuth(creator); nil != err {
		return err
	}
	if 0 == shares {
		return fault.ErrZeroShares
	}
	if reserved > shares {
		return fault.ErrInvalidSharesDistribution
	}

	return m.update(true, func(op *operation) error {
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		if !l.Creator.Equal(creator) {
			return fault.ErrListingNotOwnedByCaller
		}
		if l.TotalShares > 0 {
			return fault.ErrShareStructureFixed
		}
		// a sold listing keeps its buyer as owner of record
		if !m.ownership.IsSoleOwner(op, id, creator) {
			return fault.ErrListingNotOwnedByCaller
		}

		if err := m.ownership.Mint(op, m.self, creator, id, shares, l.MetadataURI); nil != err {
			return err
		}
		l.TotalShares = shares
		l.ReservedShares = reserved
		l.AvailableShares = shares - reserved
		putListing(op, l)

		op.emit(TopicSharesAdded, &ListingEvent{
			ListingId: id,
			Creator:   creator,
			Shares:    shares,
		})
		return nil
	})
}

// UpdateListing - change the mutable terms of a listing
func (m *Market) UpdateListing(a auth.Authoriser, id uint64, update *Update) error {
	if err := checkPrice(update.Price); nil != err {
		return err
	}
	return m.update(true, func(op *operation) error {
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		if err := a.RequireAuth(l.Creator); nil != err {
			return err
		}

		l.ReferenceId = update.ReferenceId
		l.Price = update.Price
		l.Duration = update.Duration
		l.AllowPurchase = update.AllowPurchase
		l.AllowRent = update.AllowRent
		putListing(op, l)

		op.emit(TopicListingUpdated, &ListingEvent{
			ListingId:   id,
			Creator:     l.Creator,
			ReferenceId: l.ReferenceId,
			Status:      l.Status,
		})
		return nil
	})
}

// SetListingStatus - administrative status override
func (m *Market) SetListingStatus(a auth.Authoriser, id uint64, status Status) error {
	if !status.IsValid() {
		return fault.ErrInvalidListingStatus
	}
	return m.update(true, func(op *operation) error {
		if err := a.RequireAuth(op.settings.Admin); nil != err {
			return err
		}
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		l.Status = status
		putListing(op, l)

		m.log.Warnf("listing: %d status forced to: %s", id, status)
		op.emit(TopicStatusChanged, &ListingEvent{
			ListingId: id,
			Status:    status,
		})
		return nil
	})
}

// RemoveListing - administrative removal of the listing record
//
// shares, escrow and agreements for the listing are left untouched
func (m *Market) RemoveListing(a auth.Authoriser, id uint64) error {
	return m.update(true, func(op *operation) error {
		if err := a.RequireAuth(op.settings.Admin); nil != err {
			return err
		}
		if _, err := op.listing(id); nil != err {
			return err
		}
		op.Delete(storage.Pool.Listings, util.KeyFromUint64(id))

		m.log.Warnf("listing: %d removed", id)
		op.emit(TopicListingRemoved, &ListingEvent{
			ListingId: id,
		})
		return nil
	})
}

// BurnShares - destroy some of the owner's shares in a listing
//
// the listing totals shrink with the ledger; not allowed while a
// whole sale is pending or the listing is otherwise engaged
func (m *Market) BurnShares(a auth.Authoriser, owner *account.Account, id uint64, shares uint64) error {
	if 0 == shares {
		return fault.ErrZeroShares
	}
	return m.update(true, func(op *operation) error {
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		if Available != l.Status {
			return fault.ErrListingNotAvailable
		}
		if _, pending := getProceeds(op, id); pending {
			return fault.ErrListingNotAvailable
		}

		ok, err := m.ownership.Burn(op, a, owner, id, shares)
		if nil != err {
			return err
		}
		if !ok {
			return fault.ErrInsufficientShares
		}

		l.TotalShares -= shares
		if l.ReservedShares > l.TotalShares {
			l.ReservedShares = l.TotalShares
		}
		if l.Creator.Equal(owner) {
			balance := m.ownership.BalanceOf(op, id, owner)
			if l.AvailableShares > balance {
				l.AvailableShares = balance
			}
		}
		if l.AvailableShares > l.TotalShares {
			l.AvailableShares = l.TotalShares
		}
		putListing(op, l)

		op.emit(TopicSharesBurned, &ListingEvent{
			ListingId: id,
			Creator:   owner,
			Shares:    shares,
		})
		return nil
	})
}

// Listing - a single listing
func (m *Market) Listing(id uint64) (*Listing, error) {
	if _, ok := getSettings(storage.Committed); !ok {
		return nil, fault.ErrNotInitialised
	}
	l, ok := getListing(storage.Committed, id)
	if !ok {
		return nil, fault.ErrListingNotFound
	}
	return l, nil
}

// ListingCount - number of listing ids issued, removed ones included
func (m *Market) ListingCount() uint64 {
	return listingCount(storage.Committed)
}

// Listings - up to count listings with id >= start, skipping removed ids
func (m *Market) Listings(start uint64, count int) ([]*Listing, error) {
	if count <= 0 || count > MaximumListings {
		return nil, fault.ErrInvalidCount
	}
	if 0 == start {
		start = 1
	}
	r := storage.Committed
	last := listingCount(r)
	listings := make([]*Listing, 0, count)
	for id := start; id <= last && len(listings) < count; id += 1 {
		if l, ok := getListing(r, id); ok {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

// ListingPrice - the listing price in the payment token
func (m *Market) ListingPrice(id uint64) (decimal.Decimal, error) {
	r := storage.Committed
	s, ok := getSettings(r)
	if !ok {
		return amount.Zero, fault.ErrNotInitialised
	}
	l, ok := getListing(r, id)
	if !ok {
		return amount.Zero, fault.ErrListingNotFound
	}
	return m.normaliser.Normalise(r, s.Currency, s.PaymentToken, l.Price, m.clock())
}
