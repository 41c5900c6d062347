// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/marketd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrKeyFileRequired = fault.InvalidError("signed method requires a key file")
	ErrMissingMethod   = fault.InvalidError("missing method name")
	ErrUnknownMethod   = fault.NotFoundError("no such method")
)
