// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - marketplace identities
//
// an account is an ed25519 public key; its text form is
//
//   base58( keyVariant ++ publicKey ++ checksum )
//
// where keyVariant is a varint of (algorithm << 4 | flags) and the
// checksum is the first 4 bytes of SHA3-256 over the preceding bytes
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key and its network
type Account struct {
	Test      bool
	PublicKey []byte
}

// FromBase58 - decode the text form of an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || len(decoded) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - decode the binary form of an account (no checksum)
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	account := &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: append([]byte{}, publicKey...),
	}
	return account, nil
}

// Bytes - binary form: key variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := uint64(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), account.PublicKey...)
}

// String - base58 text form with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}

// Equal - same key on the same network
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// CheckSignature - verify an ed25519 signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
