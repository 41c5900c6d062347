// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

func get(r storage.Reader, id uint64) (*Agreement, bool) {
	packed := r.Get(storage.Pool.Agreements, util.KeyFromUint64(id))
	if nil == packed {
		return nil, false
	}

	u := util.NewUnpacker(packed)
	agr := &Agreement{
		Id:   id,
		Type: Type(u.Uint64()),
	}
	user := u.Bytes()
	owner := u.Bytes()
	agr.ListingId = u.Uint64()
	agr.Timestamp = u.Uint64()
	agr.Shares = u.Uint64()
	agr.Duration = u.Uint64()
	agr.EndTime = u.Uint64()
	agr.Status = Status(u.Uint64())
	if err := u.Err(); nil != err {
		logger.Panicf("agreement: record: %d error: %s", id, err)
	}

	var err error
	if agr.User, err = account.FromBytes(user); nil != err {
		logger.Panicf("agreement: record: %d user error: %s", id, err)
	}
	if agr.Owner, err = account.FromBytes(owner); nil != err {
		logger.Panicf("agreement: record: %d owner error: %s", id, err)
	}
	return agr, true
}

func put(trx storage.Transaction, agr *Agreement) {
	packed := util.Packed{}.
		AppendUint64(uint64(agr.Type)).
		AppendBytes(agr.User.Bytes()).
		AppendBytes(agr.Owner.Bytes()).
		AppendUint64(agr.ListingId).
		AppendUint64(agr.Timestamp).
		AppendUint64(agr.Shares).
		AppendUint64(agr.Duration).
		AppendUint64(agr.EndTime).
		AppendUint64(uint64(agr.Status))
	trx.Put(storage.Pool.Agreements, util.KeyFromUint64(agr.Id), packed)
}

// indexes are count ++ [ id ] in creation order
func getIndex(r storage.Reader, pool *storage.PoolHandle, key []byte) []uint64 {
	packed := r.Get(pool, key)
	if nil == packed {
		return nil
	}
	u := util.NewUnpacker(packed)
	n := u.Uint64()
	ids := make([]uint64, 0, n)
	for i := uint64(0); i < n && nil == u.Err(); i += 1 {
		ids = append(ids, u.Uint64())
	}
	if err := u.Err(); nil != err {
		logger.Panicf("agreement: index: %x error: %s", key, err)
	}
	return ids
}

func appendIndex(trx storage.Transaction, pool *storage.PoolHandle, key []byte, id uint64) {
	ids := append(getIndex(trx, pool, key), id)
	packed := util.Packed{}.AppendUint64(uint64(len(ids)))
	for _, i := range ids {
		packed = packed.AppendUint64(i)
	}
	trx.Put(pool, key, packed)
}
