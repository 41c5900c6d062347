// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the deployments a daemon can serve
//
// only the live deployment accepts live accounts; the others accept
// testing accounts
package chain

import (
	"strings"
)

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// Normalise - lower case a chain name, mapping the empty name to Live
func Normalise(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return Live
	}
	return name
}

// IsTesting - true for chains that use testing accounts
func IsTesting(name string) bool {
	return Live != name
}
