// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. listing id   = big endian uint64 (8 bytes), also the asset id
// 4. agreement id = big endian uint64 (8 bytes)
// 5. account      = account.Bytes() (key variant ++ 32 byte public key)
// 6. packed       = util.Packed fields, amounts as decimal strings
//
// Listings:
//
//   L ++ listing id            - listing record
//                                data: packed listing
//   N ++ counter name          - sequence counters ("listing", "agreement")
//                                data: count (8 bytes)
//
// Ownership:
//
//   T ++ listing id            - token metadata
//                                data: total shares ++ uri
//   S ++ listing id            - holdings, sorted by account bytes
//                                data: count ++ [ account ++ shares ]
//   H ++ account               - listings in which the account holds shares
//                                data: count ++ [ listing id ]
//   C ++ listing id            - temporary control grant
//                                data: renter ++ end time
//
// Agreements:
//
//   A ++ agreement id          - agreement record
//   U ++ account               - agreements where account is user or owner
//                                data: count ++ [ agreement id ]
//   G ++ listing id            - agreements for a listing
//                                data: count ++ [ agreement id ]
//
// Custody:
//
//   E ++ listing id            - escrow record
//   P ++ listing id            - holdings snapshot taken when a whole asset
//                                sale is escrowed, paid out on confirmation
//   B ++ currency ++ account   - settlement token balance
//                                data: amount
//
// Configuration:
//
//   F ++ "config" | "price"    - price feed configuration and latest rate
//   M ++ "settings"            - marketplace settings
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
