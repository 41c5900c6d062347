// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/bitmark-inc/marketd/background"
)

type item struct {
	object    interface{}
	expiresAt time.Time
}

type poolData struct {
	sync.RWMutex
	items        map[string]item
	expiresAfter time.Duration
}

type pools struct {
	SeenRequests *poolData `exp:"10m"`
}

type globalDataType struct {
	sync.Mutex
	background *background.T
}

// Pool is the interface to perform CRUD operations on objects stored in memory
var Pool pools
var globalData globalDataType

// Initialise must be called before any operations to Pool
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.background {
		return nil
	}

	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {
		exp, err := expiryOf(poolType.Field(i))
		if nil != err {
			return err
		}

		poolValue.Field(i).Set(reflect.ValueOf(newPool(exp)))
	}

	processes := background.Processes{
		&cleaner{},
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise stops the expiration check process
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.background {
		return
	}
	globalData.background.Stop()
	globalData.background = nil
}

func expiryOf(field reflect.StructField) (time.Duration, error) {
	expTag := field.Tag.Get("exp")
	if 0 == len(expTag) {
		return 0, nil
	}
	d, err := time.ParseDuration(expTag)
	if nil != err {
		return 0, fmt.Errorf("invalid time duration: %s", expTag)
	}
	return d, nil
}

func newPool(expiresAfter time.Duration) *poolData {
	return &poolData{items: make(map[string]item), expiresAfter: expiresAfter}
}

func (p *poolData) expiry() time.Time {
	if p.expiresAfter > 0 {
		return time.Now().Add(p.expiresAfter)
	}
	return time.Time{}
}

// Put - store or replace an item
func (p *poolData) Put(key string, value interface{}) {
	p.Lock()
	defer p.Unlock()

	p.items[key] = item{object: value, expiresAt: p.expiry()}
}

// PutIfAbsent - store an item only when no live item holds the key,
// returns false if the key was already present
func (p *poolData) PutIfAbsent(key string, value interface{}) bool {
	p.Lock()
	defer p.Unlock()

	if old, ok := p.items[key]; ok && !expired(old.expiresAt) {
		return false
	}
	p.items[key] = item{object: value, expiresAt: p.expiry()}
	return true
}

// Get - fetch an item that has not yet expired
func (p *poolData) Get(key string) (interface{}, bool) {
	p.RLock()
	defer p.RUnlock()

	item, ok := p.items[key]
	if !ok || expired(item.expiresAt) {
		return nil, false
	}
	return item.object, true
}

// Delete - remove an item
func (p *poolData) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	delete(p.items, key)
}

// Size - number of stored items including any not yet cleaned
func (p *poolData) Size() int {
	p.RLock()
	defer p.RUnlock()

	return len(p.items)
}
