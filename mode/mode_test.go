// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/mode"
)

func TestMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.Equal(t, fault.ErrInvalidChain, mode.Initialise("bitmark"), "unknown chain")

	err := mode.Initialise(chain.Testing)
	assert.Nil(t, err, "initialise error")
	defer mode.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, mode.Initialise(chain.Testing), "second initialise")
	assert.True(t, mode.Is(mode.Starting), "starting")
	assert.True(t, mode.IsTesting(), "testing chain")
	assert.Equal(t, chain.Testing, mode.ChainName(), "chain name")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal")
	assert.True(t, mode.IsNot(mode.Stopped), "not stopped")
	assert.Equal(t, "Normal", mode.String(), "string")

	_, testingAccount := fixtures.NewAccount(t)
	assert.Nil(t, mode.CheckAccount(testingAccount), "testing account on testing chain")
}
