// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queues between committed operations
// and the background publishers
//
// senders never block: when a queue is full the message is dropped
// and counted
package messagebus
