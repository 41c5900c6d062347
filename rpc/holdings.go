// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/ownership"
)

// Agreement
// ---------

// Agreement - type for the RPC
type Agreement struct {
	namespace
}

// AgreementGetArguments - which agreement
type AgreementGetArguments struct {
	Id uint64 `json:"id,string"`
}

// Get - a single agreement
func (ag *Agreement) Get(arguments *AgreementGetArguments, reply *agreement.Agreement) error {
	if err := ag.query(); nil != err {
		return err
	}
	a, err := ag.market.Agreement(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// AgreementAccountArguments - whose agreements
type AgreementAccountArguments struct {
	Account *account.Account `json:"account"`
}

// AgreementListReply - agreement ids in creation order
type AgreementListReply struct {
	Agreements []uint64 `json:"agreements"`
}

// ForAccount - agreements an account is party to
func (ag *Agreement) ForAccount(arguments *AgreementAccountArguments, reply *AgreementListReply) error {
	if err := ag.query(); nil != err {
		return err
	}
	if nil == arguments.Account {
		return fault.ErrInvalidItem
	}
	reply.Agreements = ag.market.AgreementsOf(arguments.Account)
	return nil
}

// AgreementListingArguments - which listing
type AgreementListingArguments struct {
	Id uint64 `json:"id,string"`
}

// ForListing - agreements opened against a listing
func (ag *Agreement) ForListing(arguments *AgreementListingArguments, reply *AgreementListReply) error {
	if err := ag.query(); nil != err {
		return err
	}
	reply.Agreements = ag.market.AgreementsFor(arguments.Id)
	return nil
}

// Escrow
// ------

// Escrow - type for the RPC
type Escrow struct {
	namespace
}

// EscrowGetArguments - which listing
type EscrowGetArguments struct {
	Id uint64 `json:"id,string"`
}

// Get - the escrow record of a listing
func (e *Escrow) Get(arguments *EscrowGetArguments, reply *escrow.Escrow) error {
	if err := e.query(); nil != err {
		return err
	}
	record, err := e.market.Escrow(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *record
	return nil
}

// Ownership
// ---------

// Ownership - share holdings and control grants
type Ownership struct {
	namespace
}

// OwnershipArguments - a listing and an account
type OwnershipArguments struct {
	Id      uint64           `json:"id,string"`
	Account *account.Account `json:"account"`
}

// OwnershipBalanceReply - shares held
type OwnershipBalanceReply struct {
	Shares uint64 `json:"shares"`
}

// Balance - shares of a listing held by an account
func (o *Ownership) Balance(arguments *OwnershipArguments, reply *OwnershipBalanceReply) error {
	if err := o.query(); nil != err {
		return err
	}
	if nil == arguments.Account {
		return fault.ErrInvalidItem
	}
	reply.Shares = o.market.Balance(arguments.Id, arguments.Account)
	return nil
}

// OwnershipOwnersArguments - which listing
type OwnershipOwnersArguments struct {
	Id uint64 `json:"id,string"`
}

// OwnershipOwnersReply - every holder in insertion order
type OwnershipOwnersReply struct {
	Owners []ownership.Holding `json:"owners"`
}

// Owners - all holders of a listing's shares
func (o *Ownership) Owners(arguments *OwnershipOwnersArguments, reply *OwnershipOwnersReply) error {
	if err := o.query(); nil != err {
		return err
	}
	reply.Owners = o.market.Owners(arguments.Id)
	return nil
}

// OwnershipControlReply - whether a renter currently controls the asset
type OwnershipControlReply struct {
	Control bool `json:"control"`
}

// HasControl - true while an unexpired lease grant is held
func (o *Ownership) HasControl(arguments *OwnershipArguments, reply *OwnershipControlReply) error {
	if err := o.query(); nil != err {
		return err
	}
	if nil == arguments.Account {
		return fault.ErrInvalidItem
	}
	reply.Control = o.market.HasControl(arguments.Id, arguments.Account)
	return nil
}

// OwnershipBurnArguments - shares the signer gives up
type OwnershipBurnArguments struct {
	Signed
	Id     uint64 `json:"id,string"`
	Shares uint64 `json:"shares"`
}

// Burn - destroy some of the signer's shares
func (o *Ownership) Burn(arguments *OwnershipBurnArguments, reply *StatusReply) error {
	a, err := o.begin("Ownership.Burn", arguments)
	if nil != err {
		return err
	}
	if err := o.market.BurnShares(a, arguments.Signer, arguments.Id, arguments.Shares); nil != err {
		return err
	}
	reply.Ok = true
	return nil
}
