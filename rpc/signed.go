// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/cache"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/mode"
)

// signatures older or newer than this are refused
const maximumClockSkew = 5 * time.Minute

// Signed - the authorisation part of every mutating request
type Signed struct {
	Signer    *account.Account  `json:"signer"`
	Timestamp int64             `json:"timestamp,string"` // unix seconds
	Signature account.Signature `json:"signature"`
}

// Signable - any request argument that embeds Signed
type Signable interface {
	Signing() *Signed
}

// Signing - access to the embedded signature block
func (s *Signed) Signing() *Signed {
	return s
}

// Message - the canonical text covered by a request signature
func Message(method string, arguments Signable) ([]byte, error) {
	s := arguments.Signing()
	signature := s.Signature
	s.Signature = nil
	body, err := json.Marshal(arguments)
	s.Signature = signature
	if nil != err {
		return nil, err
	}
	message := make([]byte, 0, len(method)+1+len(body))
	message = append(message, method...)
	message = append(message, '\n')
	return append(message, body...), nil
}

// Sign - fill in the signature block of a request for the given key
func Sign(method string, arguments Signable, key *account.PrivateKey, now time.Time) error {
	s := arguments.Signing()
	s.Signer = key.Account()
	s.Timestamp = now.Unix()
	message, err := Message(method, arguments)
	if nil != err {
		return err
	}
	s.Signature = key.Sign(message)
	return nil
}

// gate - the checks shared by every namespace before a mutation
type gate struct {
	isNormalMode func(mode.Mode) bool
	checkAccount func(*account.Account) error
	clock        func() time.Time
	remember     func(signature string, method string) bool // nil: no replay check
}

func newGate() *gate {
	return &gate{
		isNormalMode: mode.Is,
		checkAccount: mode.CheckAccount,
		clock:        time.Now,
		remember:     rememberRequest,
	}
}

// false if the signature was already seen within the expiry window
func rememberRequest(signature string, method string) bool {
	return cache.Pool.SeenRequests.PutIfAbsent(signature, method)
}

// available - queries are refused only while the node is not running
func (g *gate) available() error {
	if !g.isNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringShutdown
	}
	return nil
}

// authorise - verify a signed request and return the proof for its signer
func (g *gate) authorise(method string, arguments Signable) (auth.Authoriser, error) {
	if err := g.available(); nil != err {
		return nil, err
	}

	s := arguments.Signing()
	if nil == s.Signer || 0 == len(s.Signature) {
		return nil, fault.ErrNotAuthorised
	}
	if err := g.checkAccount(s.Signer); nil != err {
		return nil, err
	}

	skew := g.clock().Sub(time.Unix(s.Timestamp, 0))
	if skew > maximumClockSkew || skew < -maximumClockSkew {
		return nil, fault.ErrRequestExpired
	}

	message, err := Message(method, arguments)
	if nil != err {
		return nil, err
	}
	proof, err := auth.Verify(s.Signer, message, s.Signature)
	if nil != err {
		return nil, err
	}

	if nil != g.remember && !g.remember(hex.EncodeToString(s.Signature), method) {
		return nil, fault.ErrRequestReplayed
	}
	return proof, nil
}
