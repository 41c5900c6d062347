// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/mode"
	"github.com/bitmark-inc/marketd/rpc/mocks"
)

var testNow = time.Unix(1600000000, 0)

// a gate that accepts testing accounts in Normal mode at a fixed time
func testGate() *gate {
	return &gate{
		isNormalMode: func(m mode.Mode) bool {
			return mode.Normal == m
		},
		checkAccount: func(acc *account.Account) error {
			if !acc.IsTesting() {
				return fault.ErrWrongNetworkForPublicKey
			}
			return nil
		},
		clock: func() time.Time {
			return testNow
		},
	}
}

func testNamespace(t *testing.T) (namespace, *mocks.MockMarketplace, *gomock.Controller) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockMarketplace(ctl)
	n := newNamespace(logger.New(fixtures.LogCategory), m, 1000, 1000)
	n.gate = testGate()
	return n, m, ctl
}

// sign a request as the given key at the test time
func sign(t *testing.T, method string, arguments Signable, key *account.PrivateKey) {
	if err := Sign(method, arguments, key, testNow); nil != err {
		t.Fatalf("sign error: %s", err)
	}
}
