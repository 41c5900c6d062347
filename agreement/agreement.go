// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package agreement - lifecycle records for purchases and leases
//
// ids are assigned from a counter and never reused; each agreement
// is indexed by both counterparties and by its listing
package agreement

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

var counterKey = []byte("agreement")

// Machine - the agreement store and its transitions
type Machine struct {
	log       *logger.L
	custodian *account.Account
}

// New - agreements are opened and advanced only for the custodian
func New(custodian *account.Account) *Machine {
	return &Machine{
		log:       logger.New("agreement"),
		custodian: custodian,
	}
}

// Create - open a new agreement in the Created state
//
// a lease carries no shares and ends duration seconds after now; a
// purchase carries its share count and no duration
func (m *Machine) Create(trx storage.Transaction, a auth.Authoriser, listing uint64, user *account.Account, owner *account.Account, shares uint64, isRental bool, duration uint64, now uint64) (uint64, error) {
	if err := a.RequireAuth(m.custodian); nil != err {
		return 0, err
	}
	if isRental && !ValidDuration(duration, now) {
		return 0, fault.ErrInvalidDuration
	}

	count, _ := trx.GetN(storage.Pool.Counters, counterKey)
	id := count + 1

	agr := &Agreement{
		Id:        id,
		User:      user,
		Owner:     owner,
		ListingId: listing,
		Timestamp: now,
		Status:    Created,
	}
	if isRental {
		agr.Type = Lease
		agr.Duration = duration
		agr.EndTime = now + duration
	} else {
		agr.Type = Purchase
		agr.Shares = shares
	}

	put(trx, agr)
	trx.PutN(storage.Pool.Counters, counterKey, id)

	appendIndex(trx, storage.Pool.AccountAgreements, user.Bytes(), id)
	if !owner.Equal(user) {
		appendIndex(trx, storage.Pool.AccountAgreements, owner.Bytes(), id)
	}
	appendIndex(trx, storage.Pool.ListingAgreements, util.KeyFromUint64(listing), id)

	m.log.Infof("create: %d type: %s listing: %d user: %s", id, agr.Type, listing, user)
	return id, nil
}

// ValidDuration - a lease needs a nonzero duration whose end time
// fits in a uint64
func ValidDuration(duration uint64, now uint64) bool {
	return 0 != duration && duration <= math.MaxUint64-now
}

// OwnerFulfilled - the owner has handed over, Created to Active
func (m *Machine) OwnerFulfilled(trx storage.Transaction, a auth.Authoriser, id uint64) error {
	if err := a.RequireAuth(m.custodian); nil != err {
		return err
	}
	agr, err := m.Get(trx, id)
	if nil != err {
		return err
	}
	if Created != agr.Status {
		return fault.ErrAgreementNotCreated
	}
	agr.Status = Active
	put(trx, agr)

	m.log.Infof("fulfilled: %d", id)
	return nil
}

// Complete - finish an open agreement for one of its counterparties
func (m *Machine) Complete(trx storage.Transaction, a auth.Authoriser, id uint64, caller *account.Account) error {
	if err := a.RequireAuth(m.custodian); nil != err {
		return err
	}
	agr, err := m.Get(trx, id)
	if nil != err {
		return err
	}
	if !agr.User.Equal(caller) && !agr.Owner.Equal(caller) {
		return fault.ErrAgreementNotOwnedByCaller
	}
	if agr.Status.IsFinished() {
		return fault.ErrAgreementFinished
	}
	if Created != agr.Status && Active != agr.Status {
		return fault.ErrAgreementNotCreated
	}
	agr.Status = Completed
	put(trx, agr)

	m.log.Infof("complete: %d by: %s", id, caller)
	return nil
}

// Terminate - the owner abandons an agreement that has not started
func (m *Machine) Terminate(trx storage.Transaction, a auth.Authoriser, id uint64, caller *account.Account) error {
	if err := a.RequireAuth(caller); nil != err {
		return err
	}
	agr, err := m.Get(trx, id)
	if nil != err {
		return err
	}
	if !agr.Owner.Equal(caller) {
		return fault.ErrAgreementNotOwnedByCaller
	}
	if Active == agr.Status {
		return fault.ErrAgreementActive
	}
	if agr.Status.IsFinished() {
		return fault.ErrAgreementFinished
	}
	agr.Status = Terminated
	put(trx, agr)

	m.log.Infof("terminate: %d by: %s", id, caller)
	return nil
}

// Get - an agreement record
func (m *Machine) Get(r storage.Reader, id uint64) (*Agreement, error) {
	agr, ok := get(r, id)
	if !ok {
		return nil, fault.ErrAgreementNotFound
	}
	return agr, nil
}

// Status - an agreement's current state
func (m *Machine) Status(r storage.Reader, id uint64) (Status, error) {
	agr, err := m.Get(r, id)
	if nil != err {
		return 0, err
	}
	return agr.Status, nil
}

// ForAccount - ids of agreements where the account is user or owner
func (m *Machine) ForAccount(r storage.Reader, acc *account.Account) []uint64 {
	return getIndex(r, storage.Pool.AccountAgreements, acc.Bytes())
}

// ForListing - ids of agreements for a listing, oldest first
func (m *Machine) ForListing(r storage.Reader, listing uint64) []uint64 {
	return getIndex(r, storage.Pool.ListingAgreements, util.KeyFromUint64(listing))
}

// Count - number of agreements ever created
func (m *Machine) Count(r storage.Reader) uint64 {
	count, _ := r.GetN(storage.Pool.Counters, counterKey)
	return count
}
