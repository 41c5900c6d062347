// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains the memory data store
//
//  ***** Data Structure *****
//
//  Pool                Key                        Value            ExpiresAfter
//  |___ SeenRequests   hex(request signature)     RPC method       10m
//
//  ***** Purpose *****
//
//  SeenRequests:
//    signatures of signed RPC requests already executed; a request is
//    only accepted within its timestamp window, so remembering each
//    signature for twice that window refuses every replay
package cache
