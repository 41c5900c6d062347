// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - signed 128 bit integer amounts in minor units
//
// values are carried as decimal.Decimal but restricted to whole
// numbers in the range [-2^127, 2^127-1]; every division truncates
// toward zero
package amount

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

var (
	maximum = decimal.NewFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)), 0)
	minimum = decimal.NewFromBigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127)), 0)

	// Zero - the zero amount
	Zero = decimal.Zero
)

// New - amount from an int64
func New(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

// FromUint64 - amount from a share count
func FromUint64(value uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(value), 0)
}

// Parse - read a base 10 integer amount
func Parse(s string) (decimal.Decimal, error) {
	a, err := decimal.NewFromString(s)
	if nil != err {
		return Zero, fault.ErrInvalidAmount
	}
	if err := Check(a); nil != err {
		return Zero, err
	}
	return a, nil
}

// Check - whole number within the signed 128 bit range
func Check(a decimal.Decimal) error {
	if !a.IsInteger() {
		return fault.ErrInvalidAmount
	}
	if a.GreaterThan(maximum) || a.LessThan(minimum) {
		return fault.ErrAmountOutOfRange
	}
	return nil
}

// Pow10 - 10^exponent as an amount
func Pow10(exponent uint32) decimal.Decimal {
	return decimal.New(1, int32(exponent))
}

// MulDiv - a * multiplier / divisor
//
// the division truncates toward zero; the product must itself be
// in range, as a fixed width multiplication would require
func MulDiv(a decimal.Decimal, multiplier decimal.Decimal, divisor decimal.Decimal) (decimal.Decimal, error) {
	if divisor.IsZero() {
		return Zero, fault.ErrInvalidAmount
	}
	product := a.Mul(multiplier)
	if err := Check(product); nil != err {
		return Zero, err
	}
	quotient, _ := product.QuoRem(divisor, 0)
	if err := Check(quotient); nil != err {
		return Zero, err
	}
	return quotient, nil
}

// Pack - append an amount to a packed record
func Pack(p util.Packed, a decimal.Decimal) util.Packed {
	return p.AppendString(a.String())
}

// Unpack - read an amount from a packed record
func Unpack(u *util.Unpacker) decimal.Decimal {
	s := u.String()
	if nil != u.Err() {
		return Zero
	}
	a, err := decimal.NewFromString(s)
	if nil != err {
		return Zero
	}
	return a
}
