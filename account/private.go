// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// PrivateKey - an ed25519 signing key and its network
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	privateKey := &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}
	return privateKey, nil
}

// PrivateKeyFromBase58 - decode the text form of a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(decoded) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.ErrNotPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	key := decoded[keyVariantLength:checksumStart]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.ErrInvalidKeyLength
	}

	privateKey := &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: append(ed25519.PrivateKey{}, key...),
	}
	return privateKey, nil
}

// Account - the public half
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: append([]byte{}, privateKey.PrivateKey.Public().(ed25519.PublicKey)...),
	}
}

// Sign - ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// String - base58 text form with checksum
func (privateKey *PrivateKey) String() string {
	keyVariant := uint64(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	buffer := append(util.ToVarint64(keyVariant), privateKey.PrivateKey...)
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}
