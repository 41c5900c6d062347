// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - per asset share balances and lease control
//
// the sum of all holdings of an asset always equals the total shares
// in its metadata; a transfer or burn that would overdraw a holder
// reports false and writes nothing
//
// an asset without shares keeps a single zero share holding naming
// its owner of record
package ownership

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

// Ledger - the share ledger, mutated only on behalf of the custodian
type Ledger struct {
	log       *logger.L
	custodian *account.Account
}

// New - create a ledger whose mutations require the custodian
func New(custodian *account.Account) *Ledger {
	return &Ledger{
		log:       logger.New("ownership"),
		custodian: custodian,
	}
}

// Mint - add shares of an asset to an owner
//
// the first mint creates the token metadata; later mints increase
// its total
func (l *Ledger) Mint(trx storage.Transaction, a auth.Authoriser, owner *account.Account, asset uint64, shares uint64, uri string) error {
	if err := a.RequireAuth(l.custodian); nil != err {
		return err
	}

	m, ok := getMetadata(trx, asset)
	if !ok {
		m = &Metadata{URI: uri}
	}
	m.TotalShares += shares
	putMetadata(trx, asset, m)

	holdings := getHoldings(trx, asset)
	if 0 == shares {
		if 0 == len(holdings) {
			putHoldings(trx, asset, []Holding{{Owner: owner, Shares: 0}})
			indexAdd(trx, owner, asset)
		}
		return nil
	}

	// shares now exist so a zero share owner of record is dropped
	kept := holdings[:0]
	for _, h := range holdings {
		if 0 == h.Shares && !h.Owner.Equal(owner) {
			indexRemove(trx, h.Owner, asset)
			continue
		}
		kept = append(kept, h)
	}
	holdings = kept

	if i := find(holdings, owner); i >= 0 {
		holdings[i].Shares += shares
	} else {
		holdings = append(holdings, Holding{Owner: owner, Shares: shares})
		indexAdd(trx, owner, asset)
	}
	putHoldings(trx, asset, holdings)

	l.log.Debugf("mint: %d shares of: %d to: %s", shares, asset, owner)
	return nil
}

// TransferAll - make an account the sole owner of an asset
//
// every other holder is cleared and any control grant is revoked; for
// an asset without shares the new owner becomes the owner of record
func (l *Ledger) TransferAll(trx storage.Transaction, a auth.Authoriser, from *account.Account, to *account.Account, asset uint64) error {
	if err := a.RequireAuth(l.custodian); nil != err {
		return err
	}

	m, ok := getMetadata(trx, asset)
	if !ok {
		return fault.ErrTokenNotFound
	}

	for _, h := range getHoldings(trx, asset) {
		indexRemove(trx, h.Owner, asset)
	}

	putHoldings(trx, asset, []Holding{{Owner: to, Shares: m.TotalShares}})
	indexAdd(trx, to, asset)
	trx.Delete(storage.Pool.Control, util.KeyFromUint64(asset))

	l.log.Debugf("transfer all: %d from: %s to: %s", asset, from, to)
	return nil
}

// TransferShares - move shares between two holders
//
// returns false without writing anything if the sender's balance is
// too small
func (l *Ledger) TransferShares(trx storage.Transaction, a auth.Authoriser, from *account.Account, to *account.Account, asset uint64, shares uint64) (bool, error) {
	if err := a.RequireAuth(l.custodian); nil != err {
		return false, err
	}
	if 0 == shares {
		return false, fault.ErrZeroShares
	}
	if _, ok := getMetadata(trx, asset); !ok {
		return false, fault.ErrTokenNotFound
	}

	holdings := getHoldings(trx, asset)
	i := find(holdings, from)
	if i < 0 || holdings[i].Shares < shares {
		return false, nil
	}
	if from.Equal(to) {
		return true, nil
	}

	holdings[i].Shares -= shares
	if 0 == holdings[i].Shares {
		holdings = append(holdings[:i], holdings[i+1:]...)
		indexRemove(trx, from, asset)
	}
	if j := find(holdings, to); j >= 0 {
		holdings[j].Shares += shares
	} else {
		holdings = append(holdings, Holding{Owner: to, Shares: shares})
		indexAdd(trx, to, asset)
	}
	putHoldings(trx, asset, holdings)

	l.log.Debugf("transfer: %d shares of: %d from: %s to: %s", shares, asset, from, to)
	return true, nil
}

// Burn - remove an owner's shares from circulation
//
// the owner must authorise; burning the last shares deletes the
// asset's metadata and control records
func (l *Ledger) Burn(trx storage.Transaction, a auth.Authoriser, owner *account.Account, asset uint64, shares uint64) (bool, error) {
	if err := a.RequireAuth(owner); nil != err {
		return false, err
	}

	m, ok := getMetadata(trx, asset)
	if !ok {
		return false, fault.ErrTokenNotFound
	}

	holdings := getHoldings(trx, asset)
	i := find(holdings, owner)
	if i < 0 || holdings[i].Shares < shares {
		return false, nil
	}

	holdings[i].Shares -= shares
	if 0 == holdings[i].Shares {
		holdings = append(holdings[:i], holdings[i+1:]...)
		indexRemove(trx, owner, asset)
	}
	m.TotalShares -= shares

	key := util.KeyFromUint64(asset)
	if 0 == m.TotalShares {
		trx.Delete(storage.Pool.Tokens, key)
		trx.Delete(storage.Pool.Holdings, key)
		trx.Delete(storage.Pool.Control, key)
	} else {
		putMetadata(trx, asset, m)
		putHoldings(trx, asset, holdings)
	}

	l.log.Debugf("burn: %d shares of: %d by: %s", shares, asset, owner)
	return true, nil
}

// Restore - replace the holdings of an asset with a saved set
//
// the set must account for exactly the asset's total shares; an
// asset without shares takes back a single owner of record
func (l *Ledger) Restore(trx storage.Transaction, a auth.Authoriser, asset uint64, holdings []Holding) error {
	if err := a.RequireAuth(l.custodian); nil != err {
		return err
	}

	m, ok := getMetadata(trx, asset)
	if !ok {
		return fault.ErrTokenNotFound
	}

	total := uint64(0)
	restored := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		if 0 == h.Shares && m.TotalShares > 0 {
			continue
		}
		if find(restored, h.Owner) >= 0 {
			return fault.ErrInvalidSharesDistribution
		}
		total += h.Shares
		restored = append(restored, h)
	}
	if total != m.TotalShares {
		return fault.ErrInvalidSharesDistribution
	}
	if 0 == m.TotalShares && len(restored) > 1 {
		return fault.ErrInvalidSharesDistribution
	}

	for _, h := range getHoldings(trx, asset) {
		indexRemove(trx, h.Owner, asset)
	}
	for _, h := range restored {
		indexAdd(trx, h.Owner, asset)
	}
	putHoldings(trx, asset, restored)

	l.log.Debugf("restore: %d holders of: %d", len(restored), asset)
	return nil
}

// SetTokenURI - replace the asset's token URI
func (l *Ledger) SetTokenURI(trx storage.Transaction, a auth.Authoriser, asset uint64, uri string) error {
	if err := a.RequireAuth(l.custodian); nil != err {
		return err
	}
	m, ok := getMetadata(trx, asset)
	if !ok {
		return fault.ErrTokenNotFound
	}
	m.URI = uri
	putMetadata(trx, asset, m)
	return nil
}

// GrantControl - give a renter temporary control until end time
func (l *Ledger) GrantControl(trx storage.Transaction, a auth.Authoriser, asset uint64, renter *account.Account, endTime uint64) error {
	if err := a.RequireAuth(l.custodian); nil != err {
		return err
	}
	packed := util.Packed{}.AppendBytes(renter.Bytes()).AppendUint64(endTime)
	trx.Put(storage.Pool.Control, util.KeyFromUint64(asset), packed)

	l.log.Debugf("grant control: %d to: %s until: %d", asset, renter, endTime)
	return nil
}

// RevokeControl - remove a renter's control grant
//
// a grant held by anyone else is left in place
func (l *Ledger) RevokeControl(trx storage.Transaction, a auth.Authoriser, asset uint64, renter *account.Account) error {
	if err := a.RequireAuth(l.custodian); nil != err {
		return err
	}
	c, ok := getControl(trx, asset)
	if ok && c.Renter.Equal(renter) {
		trx.Delete(storage.Pool.Control, util.KeyFromUint64(asset))
		l.log.Debugf("revoke control: %d from: %s", asset, renter)
	}
	return nil
}

// BalanceOf - shares held, zero if none
func (l *Ledger) BalanceOf(r storage.Reader, asset uint64, owner *account.Account) uint64 {
	holdings := getHoldings(r, asset)
	if i := find(holdings, owner); i >= 0 {
		return holdings[i].Shares
	}
	return 0
}

// MergeShares - the owner's consolidated balance
//
// balances are always stored merged so this only checks the owner
// and reads the balance
func (l *Ledger) MergeShares(r storage.Reader, a auth.Authoriser, owner *account.Account, asset uint64) (uint64, error) {
	if err := a.RequireAuth(owner); nil != err {
		return 0, err
	}
	if _, ok := getMetadata(r, asset); !ok {
		return 0, fault.ErrTokenNotFound
	}
	return l.BalanceOf(r, asset, owner), nil
}

// TotalSupply - total shares, zero for an unknown asset
func (l *Ledger) TotalSupply(r storage.Reader, asset uint64) uint64 {
	if m, ok := getMetadata(r, asset); ok {
		return m.TotalShares
	}
	return 0
}

// IsSoleOwner - true if the account holds every share, or is the
// owner of record of an asset without shares
func (l *Ledger) IsSoleOwner(r storage.Reader, asset uint64, owner *account.Account) bool {
	m, ok := getMetadata(r, asset)
	if !ok {
		return false
	}
	holdings := getHoldings(r, asset)
	i := find(holdings, owner)
	if i < 0 {
		return false
	}
	return holdings[i].Shares == m.TotalShares
}

// OwnerOfRecord - the single holder of an asset without shares
func (l *Ledger) OwnerOfRecord(r storage.Reader, asset uint64) (*account.Account, bool) {
	m, ok := getMetadata(r, asset)
	if !ok || m.TotalShares > 0 {
		return nil, false
	}
	holdings := getHoldings(r, asset)
	if 1 != len(holdings) {
		return nil, false
	}
	return holdings[0].Owner, true
}

// HasControl - true for any holder or an unexpired renter
func (l *Ledger) HasControl(r storage.Reader, asset uint64, who *account.Account, now uint64) bool {
	if find(getHoldings(r, asset), who) >= 0 {
		return true
	}
	c, ok := getControl(r, asset)
	return ok && c.Renter.Equal(who) && now < c.EndTime
}

// Owners - all holders sorted by account
func (l *Ledger) Owners(r storage.Reader, asset uint64) []Holding {
	return getHoldings(r, asset)
}

// Exists - true if the asset has been minted
func (l *Ledger) Exists(r storage.Reader, asset uint64) bool {
	return r.Has(storage.Pool.Tokens, util.KeyFromUint64(asset))
}

// Metadata - the asset's token lot
func (l *Ledger) Metadata(r storage.Reader, asset uint64) (*Metadata, error) {
	m, ok := getMetadata(r, asset)
	if !ok {
		return nil, fault.ErrTokenNotFound
	}
	return m, nil
}

// TokenURI - the asset's token URI
func (l *Ledger) TokenURI(r storage.Reader, asset uint64) (string, error) {
	m, err := l.Metadata(r, asset)
	if nil != err {
		return "", err
	}
	return m.URI, nil
}

// Control - the current control grant, if any
func (l *Ledger) Control(r storage.Reader, asset uint64) (*Control, bool) {
	return getControl(r, asset)
}

// TokensOf - assets the account holds, including those it owns of
// record
func (l *Ledger) TokensOf(r storage.Reader, owner *account.Account) []uint64 {
	return getTokens(r, owner)
}

func find(holdings []Holding, owner *account.Account) int {
	for i, h := range holdings {
		if h.Owner.Equal(owner) {
			return i
		}
	}
	return -1
}
