// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/mode"
)

func TestAuthorise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	key, signer := fixtures.NewAccount(t)
	_, other := fixtures.NewAccount(t)
	g := testGate()

	arguments := &TradeRentArguments{
		Id:       3,
		Amount:   amount.New(250),
		Duration: 86400,
	}
	sign(t, "Trade.Rent", arguments, key)
	assert.Equal(t, signer, arguments.Signer, "wrong signer")
	assert.Equal(t, testNow.Unix(), arguments.Timestamp, "wrong timestamp")

	a, err := g.authorise("Trade.Rent", arguments)
	assert.Nil(t, err, "wrong authorise")
	assert.Nil(t, a.RequireAuth(signer), "signer not covered")
	assert.Equal(t, fault.ErrNotAuthorised, a.RequireAuth(other), "other account covered")

	_, err = g.authorise("Trade.Purchase", arguments)
	assert.Equal(t, fault.ErrInvalidSignature, err, "signature accepted for another method")

	arguments.Duration = 2 * 86400
	_, err = g.authorise("Trade.Rent", arguments)
	assert.Equal(t, fault.ErrInvalidSignature, err, "tampered request accepted")
}

func TestAuthoriseAfterTransport(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	key, signer := fixtures.NewAccount(t)

	arguments := &ListingCreateArguments{}
	arguments.Terms.ReferenceId = "ref-1"
	arguments.Terms.Price = amount.New(1000)
	arguments.Terms.AllowPurchase = true
	arguments.Terms.TotalShares = 1000
	sign(t, "Listing.Create", arguments, key)

	buffer, err := json.Marshal(arguments)
	assert.Nil(t, err, "marshal error")

	var received ListingCreateArguments
	err = json.Unmarshal(buffer, &received)
	assert.Nil(t, err, "unmarshal error")

	a, err := testGate().authorise("Listing.Create", &received)
	assert.Nil(t, err, "wrong authorise")
	assert.Nil(t, a.RequireAuth(signer), "signer not covered")
}

func TestAuthoriseRefused(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	key, _ := fixtures.NewAccount(t)
	g := testGate()

	unsigned := &TradeArguments{Id: 1}
	_, err := g.authorise("Trade.Cancel", unsigned)
	assert.Equal(t, fault.ErrNotAuthorised, err, "unsigned request")

	old := &TradeArguments{Id: 1}
	err = Sign("Trade.Cancel", old, key, testNow.Add(-maximumClockSkew-time.Second))
	assert.Nil(t, err, "sign error")
	_, err = g.authorise("Trade.Cancel", old)
	assert.Equal(t, fault.ErrRequestExpired, err, "old request")

	future := &TradeArguments{Id: 1}
	err = Sign("Trade.Cancel", future, key, testNow.Add(maximumClockSkew+time.Second))
	assert.Nil(t, err, "sign error")
	_, err = g.authorise("Trade.Cancel", future)
	assert.Equal(t, fault.ErrRequestExpired, err, "future request")

	live, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "key error")
	wrongChain := &TradeArguments{Id: 1}
	sign(t, "Trade.Cancel", wrongChain, live)
	_, err = g.authorise("Trade.Cancel", wrongChain)
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "live key on testing chain")

	stopping := testGate()
	stopping.isNormalMode = func(mode.Mode) bool { return false }
	signed := &TradeArguments{Id: 1}
	sign(t, "Trade.Cancel", signed, key)
	_, err = stopping.authorise("Trade.Cancel", signed)
	assert.Equal(t, fault.ErrNotAvailableDuringShutdown, err, "request during shutdown")
}

func TestAuthoriseReplay(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	key, signer := fixtures.NewAccount(t)

	seen := map[string]string{}
	g := testGate()
	g.remember = func(signature string, method string) bool {
		if _, ok := seen[signature]; ok {
			return false
		}
		seen[signature] = method
		return true
	}

	arguments := &TradeArguments{Id: 4}
	sign(t, "Trade.Purchase", arguments, key)

	a, err := g.authorise("Trade.Purchase", arguments)
	assert.Nil(t, err, "wrong authorise")
	assert.Nil(t, a.RequireAuth(signer), "signer not covered")

	_, err = g.authorise("Trade.Purchase", arguments)
	assert.Equal(t, fault.ErrRequestReplayed, err, "replayed request accepted")

	// a tampered copy fails verification before it is remembered
	tampered := *arguments
	tampered.Id = 5
	_, err = g.authorise("Trade.Purchase", &tampered)
	assert.Equal(t, fault.ErrInvalidSignature, err, "tampered request")
	assert.Equal(t, 1, len(seen), "tampered request remembered")
}

func TestMessage(t *testing.T) {
	arguments := &ListingRemoveArguments{Id: 9}
	arguments.Signature = account.Signature{1, 2, 3}

	message, err := Message("Listing.Remove", arguments)
	assert.Nil(t, err, "message error")
	assert.Equal(t, `Listing.Remove
{"signer":null,"timestamp":"0","signature":"","id":"9"}`, string(message), "wrong message")
	assert.Equal(t, account.Signature{1, 2, 3}, arguments.Signature, "signature not restored")
}
