// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - proof that an identity approved the current call
//
// every privileged mutation asks its Authoriser for the identity it
// acts on behalf of; a failure aborts the whole operation before any
// state is written
package auth

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
)

// Authoriser - the authorisation oracle
type Authoriser interface {
	RequireAuth(*account.Account) error
}

// Proof - the accounts that are proven to approve the call
type Proof struct {
	accounts []*account.Account
}

// Verify - check a signature over the canonical request text and
// return a proof for the signer
func Verify(signer *account.Account, message []byte, signature account.Signature) (*Proof, error) {
	if nil == signer {
		return nil, fault.ErrNotAuthorised
	}
	if err := signer.CheckSignature(message, signature); nil != err {
		return nil, err
	}
	return Trusted(signer), nil
}

// Trusted - a proof for identities held in process, such as the
// marketplace custodian acting for itself
func Trusted(accounts ...*account.Account) *Proof {
	return &Proof{
		accounts: append([]*account.Account{}, accounts...),
	}
}

// With - a new proof that also covers the given accounts
func (p *Proof) With(accounts ...*account.Account) *Proof {
	all := append([]*account.Account{}, p.accounts...)
	return &Proof{
		accounts: append(all, accounts...),
	}
}

// RequireAuth - fails unless the account is covered by the proof
func (p *Proof) RequireAuth(acc *account.Account) error {
	if nil == acc {
		return fault.ErrNotAuthorised
	}
	for _, a := range p.accounts {
		if a.Equal(acc) {
			return nil
		}
	}
	return fault.ErrNotAuthorised
}

// Combine - an Authoriser that accepts an account if any of the
// parts does
func Combine(parts ...Authoriser) Authoriser {
	return combined(parts)
}

type combined []Authoriser

func (c combined) RequireAuth(acc *account.Account) error {
	for _, a := range c {
		if nil != a && nil == a.RequireAuth(acc) {
			return nil
		}
	}
	return fault.ErrNotAuthorised
}
