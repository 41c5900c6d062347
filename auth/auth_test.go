// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/fault"
)

func newAccount(t *testing.T) (*account.PrivateKey, *account.Account) {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	return key, key.Account()
}

func TestVerify(t *testing.T) {
	key, acc := newAccount(t)
	_, other := newAccount(t)

	message := []byte("rent listing 3")
	proof, err := auth.Verify(acc, message, key.Sign(message))
	assert.Nil(t, err, "valid signature rejected")
	assert.Nil(t, proof.RequireAuth(acc), "signer not authorised")
	assert.Equal(t, fault.ErrNotAuthorised, proof.RequireAuth(other), "other account authorised")

	_, err = auth.Verify(other, message, key.Sign(message))
	assert.True(t, fault.IsErrAuthorisation(err), "wrong signer accepted")

	_, err = auth.Verify(nil, message, nil)
	assert.Equal(t, fault.ErrNotAuthorised, err, "missing signer accepted")
}

func TestWithAndCombine(t *testing.T) {
	_, user := newAccount(t)
	_, custodian := newAccount(t)
	_, stranger := newAccount(t)

	p := auth.Trusted(user).With(custodian)
	assert.Nil(t, p.RequireAuth(user), "user not authorised")
	assert.Nil(t, p.RequireAuth(custodian), "custodian not authorised")
	assert.NotNil(t, p.RequireAuth(stranger), "stranger authorised")

	c := auth.Combine(auth.Trusted(user), nil, auth.Trusted(custodian))
	assert.Nil(t, c.RequireAuth(custodian), "combined custodian not authorised")
	assert.Equal(t, fault.ErrNotAuthorised, c.RequireAuth(stranger), "combined stranger authorised")
	assert.Equal(t, fault.ErrNotAuthorised, c.RequireAuth(nil), "nil account authorised")
}
