// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"reflect"
	"time"
)

const expirationCheckInterval = time.Minute

type cleaner struct{}

func (c *cleaner) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(expirationCheckInterval)
	for {
		select {
		case <-ticker.C:
			deleteExpiredItems()
		case <-shutdown:
			ticker.Stop()
			return
		}
	}
}

func deleteExpiredItems() {
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolValue.NumField(); i += 1 {
		poolValue.Field(i).Interface().(*poolData).deleteExpired()
	}
}

func (p *poolData) deleteExpired() {
	p.Lock()
	defer p.Unlock()

	for key, item := range p.items {
		if expired(item.expiresAt) {
			delete(p.items, key)
		}
	}
}

func expired(exp time.Time) bool {
	return !exp.IsZero() && time.Since(exp) > 0
}
