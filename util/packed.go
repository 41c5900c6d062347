// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/marketd/fault"
)

// Packed - a record built from a sequence of varint and
// length-prefixed byte fields
type Packed []byte

// AppendUint64 - add a varint field
func (p Packed) AppendUint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// AppendBool - add a single byte flag
func (p Packed) AppendBool(value bool) Packed {
	if value {
		return append(p, 1)
	}
	return append(p, 0)
}

// AppendBytes - add a length-prefixed byte field
func (p Packed) AppendBytes(value []byte) Packed {
	p = append(p, ToVarint64(uint64(len(value)))...)
	return append(p, value...)
}

// AppendString - add a length-prefixed string field
func (p Packed) AppendString(value string) Packed {
	return p.AppendBytes([]byte(value))
}

// Unpacker - sequential reader for Packed records
//
// the first decoding failure is remembered and all later reads
// return zero values, so callers only need to check Err once
type Unpacker struct {
	buffer []byte
	err    error
}

// NewUnpacker - start reading a packed record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{buffer: buffer}
}

// Uint64 - read a varint field
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		u.err = fault.ErrTruncatedRecord
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// Bool - read a single byte flag
func (u *Unpacker) Bool() bool {
	if nil != u.err {
		return false
	}
	if 0 == len(u.buffer) {
		u.err = fault.ErrTruncatedRecord
		return false
	}
	value := 0 != u.buffer[0]
	u.buffer = u.buffer[1:]
	return value
}

// Bytes - read a length-prefixed field, the result is a copy
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)) < length {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	value := make([]byte, length)
	copy(value, u.buffer[:length])
	u.buffer = u.buffer[length:]
	return value
}

// String - read a length-prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Remaining - true if unread bytes are left
func (u *Unpacker) Remaining() bool {
	return 0 != len(u.buffer)
}

// Err - the first decoding error, if any
func (u *Unpacker) Err() error {
	return u.err
}
