// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - setup and handle all of the incoming JSON RPC requests
// from clients requiring marketplace services
//
// standard golang RPC services can be used on the client side to
// access these services. Every call that changes state embeds Signed
// and must be signed by the account it acts for: the signature covers
// the method name and the JSON of the arguments with an empty
// signature field, see Sign
package rpc
