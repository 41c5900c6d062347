// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

// Holding - shares of one asset held by one account
type Holding struct {
	Owner  *account.Account `json:"owner"`
	Shares uint64           `json:"shares"`
}

// Metadata - token lot for an asset
type Metadata struct {
	TotalShares uint64 `json:"totalShares"`
	URI         string `json:"uri"`
}

// Control - temporary control grant for a lease window
type Control struct {
	Renter  *account.Account `json:"renter"`
	EndTime uint64           `json:"endTime"`
}

func getMetadata(r storage.Reader, asset uint64) (*Metadata, bool) {
	packed := r.Get(storage.Pool.Tokens, util.KeyFromUint64(asset))
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	m := &Metadata{
		TotalShares: u.Uint64(),
		URI:         u.String(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("ownership: metadata for: %d error: %s", asset, err)
	}
	return m, true
}

func putMetadata(trx storage.Transaction, asset uint64, m *Metadata) {
	packed := util.Packed{}.AppendUint64(m.TotalShares).AppendString(m.URI)
	trx.Put(storage.Pool.Tokens, util.KeyFromUint64(asset), packed)
}

// holdings are kept sorted by account bytes
func getHoldings(r storage.Reader, asset uint64) []Holding {
	packed := r.Get(storage.Pool.Holdings, util.KeyFromUint64(asset))
	if nil == packed {
		return nil
	}
	u := util.NewUnpacker(packed)
	n := u.Uint64()
	holdings := make([]Holding, 0, n)
	for i := uint64(0); i < n && nil == u.Err(); i += 1 {
		owner, err := account.FromBytes(u.Bytes())
		if nil != err {
			logger.Panicf("ownership: holdings for: %d account error: %s", asset, err)
		}
		holdings = append(holdings, Holding{
			Owner:  owner,
			Shares: u.Uint64(),
		})
	}
	if err := u.Err(); nil != err {
		logger.Panicf("ownership: holdings for: %d error: %s", asset, err)
	}
	return holdings
}

func putHoldings(trx storage.Transaction, asset uint64, holdings []Holding) {
	key := util.KeyFromUint64(asset)
	if 0 == len(holdings) {
		trx.Delete(storage.Pool.Holdings, key)
		return
	}
	sortHoldings(holdings)
	packed := util.Packed{}.AppendUint64(uint64(len(holdings)))
	for _, h := range holdings {
		packed = packed.AppendBytes(h.Owner.Bytes()).AppendUint64(h.Shares)
	}
	trx.Put(storage.Pool.Holdings, key, packed)
}

func sortHoldings(holdings []Holding) {
	sort.Slice(holdings, func(i, j int) bool {
		return bytes.Compare(holdings[i].Owner.Bytes(), holdings[j].Owner.Bytes()) < 0
	})
}

func getControl(r storage.Reader, asset uint64) (*Control, bool) {
	packed := r.Get(storage.Pool.Control, util.KeyFromUint64(asset))
	if nil == packed {
		return nil, false
	}
	u := util.NewUnpacker(packed)
	renter, err := account.FromBytes(u.Bytes())
	if nil != err {
		logger.Panicf("ownership: control for: %d account error: %s", asset, err)
	}
	c := &Control{
		Renter:  renter,
		EndTime: u.Uint64(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("ownership: control for: %d error: %s", asset, err)
	}
	return c, true
}

// the holder index lists the assets in which an account has a
// holding
func getTokens(r storage.Reader, owner *account.Account) []uint64 {
	packed := r.Get(storage.Pool.Holders, owner.Bytes())
	if nil == packed {
		return nil
	}
	u := util.NewUnpacker(packed)
	n := u.Uint64()
	tokens := make([]uint64, 0, n)
	for i := uint64(0); i < n && nil == u.Err(); i += 1 {
		tokens = append(tokens, u.Uint64())
	}
	if err := u.Err(); nil != err {
		logger.Panicf("ownership: holder index for: %s error: %s", owner, err)
	}
	return tokens
}

func putTokens(trx storage.Transaction, owner *account.Account, tokens []uint64) {
	if 0 == len(tokens) {
		trx.Delete(storage.Pool.Holders, owner.Bytes())
		return
	}
	packed := util.Packed{}.AppendUint64(uint64(len(tokens)))
	for _, t := range tokens {
		packed = packed.AppendUint64(t)
	}
	trx.Put(storage.Pool.Holders, owner.Bytes(), packed)
}

func indexAdd(trx storage.Transaction, owner *account.Account, asset uint64) {
	tokens := getTokens(trx, owner)
	i := sort.Search(len(tokens), func(i int) bool { return tokens[i] >= asset })
	if i < len(tokens) && tokens[i] == asset {
		return
	}
	tokens = append(tokens, 0)
	copy(tokens[i+1:], tokens[i:])
	tokens[i] = asset
	putTokens(trx, owner, tokens)
}

func indexRemove(trx storage.Transaction, owner *account.Account, asset uint64) {
	tokens := getTokens(trx, owner)
	i := sort.Search(len(tokens), func(i int) bool { return tokens[i] >= asset })
	if i == len(tokens) || tokens[i] != asset {
		return
	}
	putTokens(trx, owner, append(tokens[:i], tokens[i+1:]...))
}
