// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/market"
)

func TestConfirmPurchase(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	id, agreementId := escrowedSale(t, tm)

	err := tm.m.ConfirmReceipt(auth.Trusted(tm.other), tm.other, id, false)
	assert.Equal(t, fault.ErrAgreementNotOwnedByCaller, err, "not the buyer")

	err = tm.m.ConfirmReceipt(auth.Trusted(tm.buyer), tm.buyer, id, true)
	assert.Equal(t, fault.ErrAgreementTypeMismatch, err, "purchase confirmed as rental")

	err = tm.m.ConfirmReceipt(auth.Trusted(tm.other), tm.buyer, id, false)
	assert.True(t, fault.IsErrAuthorisation(err), "buyer did not sign")

	tm.sink.reset()
	err = tm.m.ConfirmReceipt(auth.Trusted(tm.buyer), tm.buyer, id, false)
	assert.Nil(t, err, "confirm error")

	l := tm.listing(t, id)
	assert.Equal(t, market.Purchased, l.Status, "status")
	assert.Equal(t, uint64(1000), tm.m.Balance(id, tm.buyer), "buyer keeps everything")

	agr, err := tm.m.Agreement(agreementId)
	assert.Nil(t, err, "agreement error")
	assert.Equal(t, agreement.Completed, agr.Status, "agreement completed")

	e, err := tm.m.Escrow(id)
	assert.Nil(t, err, "escrow error")
	assert.Equal(t, escrow.Completed, e.Status, "escrow released")

	// pre-sale holders are paid pro rata
	assert.Equal(t, "1000", tm.balance(tm.creator).String(), "creator: 300 for shares, 700 on confirm")
	assert.Equal(t, "10000", tm.balance(tm.other).String(), "other: paid 300, received 300")
	assert.Equal(t, "0", tm.balance(tm.vault).String(), "vault emptied")
	assert.Equal(t, "0", tm.balance(tm.custodian).String(), "custodian emptied")

	assert.Equal(t, []string{market.TopicDividend, market.TopicEscrowReleased, market.TopicConfirmed}, tm.sink.topics(), "events")

	err = tm.m.ConfirmReceipt(auth.Trusted(tm.buyer), tm.buyer, id, false)
	assert.Equal(t, fault.ErrEscrowNotActive, err, "second confirmation")
}

func TestCancelPurchase(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	id, agreementId := escrowedSale(t, tm)

	err := tm.m.Cancel(auth.Trusted(tm.buyer), tm.buyer, id)
	assert.Equal(t, fault.ErrAgreementNotOwnedByCaller, err, "buyer cannot cancel")

	err = tm.m.Cancel(auth.Trusted(tm.buyer), tm.creator, id)
	assert.True(t, fault.IsErrAuthorisation(err), "seller did not sign")

	err = tm.m.Cancel(auth.Trusted(tm.creator), tm.creator, id)
	assert.Nil(t, err, "cancel error")

	l := tm.listing(t, id)
	assert.Equal(t, market.Available, l.Status, "status")
	assert.Equal(t, uint64(600), l.AvailableShares, "available restored")
	assert.Equal(t, uint64(700), tm.m.Balance(id, tm.creator), "creator restored")
	assert.Equal(t, uint64(300), tm.m.Balance(id, tm.other), "other restored")
	assert.Equal(t, uint64(0), tm.m.Balance(id, tm.buyer), "buyer cleared")
	assert.Equal(t, "10000", tm.balance(tm.buyer).String(), "buyer refunded")
	assert.Equal(t, "0", tm.balance(tm.vault).String(), "vault emptied")
	tm.conserved(t, id)

	agr, err := tm.m.Agreement(agreementId)
	assert.Nil(t, err, "agreement error")
	assert.Equal(t, agreement.Terminated, agr.Status, "agreement terminated")

	e, err := tm.m.Escrow(id)
	assert.Nil(t, err, "escrow error")
	assert.Equal(t, escrow.Refunded, e.Status, "escrow refunded")

	err = tm.m.Cancel(auth.Trusted(tm.creator), tm.creator, id)
	assert.Equal(t, fault.ErrAgreementFinished, err, "second cancel")

	// the listing can be sold again
	_, err = tm.m.Purchase(auth.Trusted(tm.buyer), tm.buyer, id)
	assert.Nil(t, err, "purchase after cancel")
}

func rental(t *testing.T, tm *testMarket) (uint64, uint64) {
	id := tm.list(t, saleTerms(1000, 100, 0))
	agreementId, err := tm.m.Rent(auth.Trusted(tm.buyer), tm.buyer, id, amount.New(500), 3600)
	if nil != err {
		t.Fatalf("rent error: %s", err)
	}
	return id, agreementId
}

func TestRent(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	id, agreementId := rental(t, tm)

	l := tm.listing(t, id)
	assert.Equal(t, market.Unavailable, l.Status, "status")
	assert.Equal(t, agreementId, l.AgreementId, "agreement")
	assert.Equal(t, "9500", tm.balance(tm.buyer).String(), "renter paid")
	assert.Equal(t, "500", tm.balance(tm.vault).String(), "vault holds rent")

	agr, err := tm.m.Agreement(agreementId)
	assert.Nil(t, err, "agreement error")
	assert.True(t, agr.IsRental(), "lease")
	assert.Equal(t, startTime+3600, agr.EndTime, "end time")
	assert.True(t, tm.creator.Equal(agr.Owner), "lease owner")

	_, err = tm.m.Purchase(auth.Trusted(tm.other), tm.other, id)
	assert.Equal(t, fault.ErrListingNotAvailable, err, "purchase while rented")

	_, err = tm.m.Rent(auth.Trusted(tm.other), tm.other, id, amount.New(500), 3600)
	assert.Equal(t, fault.ErrListingNotAvailable, err, "second rental")
}

func TestRentErrors(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	terms := saleTerms(1000, 100, 0)
	terms.AllowRent = false
	id := tm.list(t, terms)

	_, err := tm.m.Rent(auth.Trusted(tm.buyer), tm.buyer, id, amount.New(10), 60)
	assert.Equal(t, fault.ErrRentNotAllowed, err, "rent disabled")

	_, err = tm.m.Rent(auth.Trusted(tm.buyer), tm.buyer, id, amount.New(0), 60)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero rent")

	_, err = tm.m.Rent(auth.Trusted(tm.buyer), tm.buyer, id, amount.New(10), 0)
	assert.Equal(t, fault.ErrInvalidDuration, err, "zero duration")

	long := tm.list(t, saleTerms(1000, 100, 0))
	_, err = tm.m.Rent(auth.Trusted(tm.buyer), tm.buyer, long, amount.New(500), math.MaxUint64-10)
	assert.Equal(t, fault.ErrInvalidDuration, err, "end time overflows")
	assert.Equal(t, market.Available, tm.listing(t, long).Status, "listing taken by failed rent")
	assert.Equal(t, "10000", tm.balance(tm.buyer).String(), "renter charged")
	assert.False(t, tm.m.HasControl(long, tm.buyer), "renter granted control")

	id2 := tm.list(t, saleTerms(1000, 100, 0))
	_, err = tm.m.Rent(auth.Trusted(tm.creator), tm.creator, id2, amount.New(10), 60)
	assert.Equal(t, fault.ErrSameAccount, err, "creator rents own listing")
}

func TestConfirmLeaseAndReclaim(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	id, agreementId := rental(t, tm)

	err := tm.m.ReclaimOrReturn(auth.Trusted(tm.creator), tm.creator, id)
	assert.Equal(t, fault.ErrEscrowActive, err, "reclaim before confirmation")

	err = tm.m.ConfirmReceipt(auth.Trusted(tm.buyer), tm.buyer, id, false)
	assert.Equal(t, fault.ErrAgreementTypeMismatch, err, "lease confirmed as purchase")

	err = tm.m.ConfirmReceipt(auth.Trusted(tm.buyer), tm.buyer, id, true)
	assert.Nil(t, err, "confirm error")

	assert.Equal(t, market.Rented, tm.listing(t, id).Status, "status")
	assert.True(t, tm.m.HasControl(id, tm.buyer), "renter has control")
	assert.False(t, tm.m.HasControl(id, tm.other), "nobody else has control")
	assert.Equal(t, uint64(100), tm.m.Balance(id, tm.creator), "ownership unchanged")
	assert.Equal(t, "500", tm.balance(tm.creator).String(), "rent paid to the holder")

	agr, err := tm.m.Agreement(agreementId)
	assert.Nil(t, err, "agreement error")
	assert.Equal(t, agreement.Active, agr.Status, "lease active")

	err = tm.m.Cancel(auth.Trusted(tm.creator), tm.creator, id)
	assert.Equal(t, fault.ErrAgreementActive, err, "cancel an active lease")

	tm.now += 3600
	assert.False(t, tm.m.HasControl(id, tm.buyer), "control expires")

	err = tm.m.ReclaimOrReturn(auth.Trusted(tm.buyer), tm.buyer, id)
	assert.Equal(t, fault.ErrAgreementNotOwnedByCaller, err, "renter cannot reclaim")

	err = tm.m.ReclaimOrReturn(auth.Trusted(tm.creator), tm.creator, id)
	assert.Nil(t, err, "reclaim error")

	assert.Equal(t, market.Available, tm.listing(t, id).Status, "available again")
	agr, err = tm.m.Agreement(agreementId)
	assert.Nil(t, err, "agreement error")
	assert.Equal(t, agreement.Completed, agr.Status, "lease completed")

	_, err = tm.m.Rent(auth.Trusted(tm.other), tm.other, id, amount.New(100), 60)
	assert.Nil(t, err, "rent again")
}

func TestCancelLease(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	id, agreementId := rental(t, tm)

	err := tm.m.Cancel(auth.Trusted(tm.creator), tm.creator, id)
	assert.Nil(t, err, "cancel error")

	assert.Equal(t, market.Available, tm.listing(t, id).Status, "status")
	assert.Equal(t, "10000", tm.balance(tm.buyer).String(), "renter refunded")
	assert.Equal(t, uint64(100), tm.m.Balance(id, tm.creator), "ownership untouched")

	agr, err := tm.m.Agreement(agreementId)
	assert.Nil(t, err, "agreement error")
	assert.Equal(t, agreement.Terminated, agr.Status, "terminated")

	err = tm.m.ReclaimOrReturn(auth.Trusted(tm.creator), tm.creator, id)
	assert.Equal(t, fault.ErrAgreementFinished, err, "reclaim a cancelled lease")
}

func TestNoAgreement(t *testing.T) {
	tm := setup(t)
	defer fixtures.TeardownTestDatabase()

	id := tm.list(t, saleTerms(1000, 100, 0))

	err := tm.m.ConfirmReceipt(auth.Trusted(tm.buyer), tm.buyer, id, false)
	assert.Equal(t, fault.ErrAgreementNotFound, err, "confirm")

	err = tm.m.Cancel(auth.Trusted(tm.creator), tm.creator, id)
	assert.Equal(t, fault.ErrAgreementNotFound, err, "cancel")

	err = tm.m.ReclaimOrReturn(auth.Trusted(tm.creator), tm.creator, id)
	assert.Equal(t, fault.ErrAgreementNotFound, err, "reclaim")

	assert.Equal(t, 1, len(tm.sink.events), "only the creation was published")
}
