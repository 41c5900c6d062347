// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - settlement and listing currencies
package currency

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/fault"
)

// Currency - currency enumeration
type Currency uint64

// possible currency values
const (
	Nothing      Currency = iota // this must be the first value
	NGNG         Currency = iota // naira stable token, the default listing currency
	USDC         Currency = iota
	XLM          Currency = iota // known but refused as a listing currency
	maximumValue Currency = iota // this must be the last value
	First        Currency = Nothing + 1
	Last         Currency = maximumValue - 1
)

// internal conversion
func toString(c Currency) (string, error) {
	switch c {
	case Nothing:
		return "", nil
	case NGNG:
		return "NGNG", nil
	case USDC:
		return "USDC", nil
	case XLM:
		return "XLM", nil
	default:
		return "", fault.ErrInvalidCurrency
	}
}

// FromString - convert a symbol to a currency
func FromString(in string) (Currency, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "":
		return Nothing, nil
	case "ngng":
		return NGNG, nil
	case "usdc":
		return USDC, nil
	case "xlm", "lumens":
		return XLM, nil
	default:
		return Nothing, fault.ErrInvalidCurrency
	}
}

// String - convert a currency to its symbol
func (currency Currency) String() string {
	s, err := toString(currency)
	if nil != err {
		logger.Panicf("invalid currency enumeration: %d", currency)
	}
	return s
}

// GoString - enum value and symbol, for debugging
func (currency Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", uint64(currency), currency.String())
}

// IsValid - in range of First to Last; Nothing is not valid
func (currency Currency) IsValid() bool {
	return currency >= First && currency <= Last
}

// CheckListing - a valid currency that listings may be priced in
func (currency Currency) CheckListing() error {
	if !currency.IsValid() {
		return fault.ErrInvalidCurrency
	}
	if XLM == currency {
		return fault.ErrCurrencyNotSupported
	}
	return nil
}
