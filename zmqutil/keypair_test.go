// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/zmqutil"
)

const (
	publicHex  = "PUBLIC:7f5cf5f1bc6e7e2d0ac1e8b3f6f6a1d6e4d1c2a6b8b0e3f1a2c4d6e8f0a1b2c3"
	privateHex = "PRIVATE:0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"
)

func TestParseKey(t *testing.T) {
	data, private, err := zmqutil.ParseKey(publicHex + "\n")
	assert.Nil(t, err, "public key error")
	assert.False(t, private, "public key reported private")
	assert.Equal(t, 32, len(data), "public key length")

	data, private, err = zmqutil.ParseKey(privateHex)
	assert.Nil(t, err, "private key error")
	assert.True(t, private, "private key reported public")
	assert.Equal(t, byte(1), data[0], "first byte")

	_, _, err = zmqutil.ParseKey("PUBLIC:0102")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "short public key")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz" + strings.Repeat("00", 31))
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "bad hex")

	_, _, err = zmqutil.ParseKey("SECRET:00")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "unknown tag")
}

func TestReadKeyKinds(t *testing.T) {
	_, err := zmqutil.ReadPublicKey(privateHex)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "private given as public")

	_, err = zmqutil.ReadPrivateKey(publicHex)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "public given as private")

	key, err := zmqutil.ReadPrivateKey(privateHex)
	assert.Nil(t, err, "private key error")
	assert.Equal(t, 32, len(key), "private key length")
}
