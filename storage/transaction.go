// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/marketd/fault"
)

// Transaction - an atomic set of writes across all pools
//
// writes are collected in a leveldb batch and become visible to
// PoolHandle reads only after Commit; reads through the transaction
// observe its own pending writes
type Transaction interface {
	Reader
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = true
	t.batch.Reset()
	t.cache.Clear()

	return nil
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	v := append([]byte{}, value...)
	t.batch.Put(k, v)
	t.cache.Set(dbPut, string(k), v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.batch.Delete(k)
	t.cache.Set(dbDelete, string(k), nil)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	if value, op, found := t.cache.Get(string(handle.prefixKey(key))); found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	if _, op, found := t.cache.Get(string(handle.prefixKey(key))); found {
		return dbPut == op
	}
	return handle.Has(key)
}

// Commit - write the batch atomically and release the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotStarted
	}

	poolData.RLock()
	err := t.db.Write(t.batch, nil)
	poolData.RUnlock()

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false

	return err
}

// Abort - discard all pending writes and release the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
