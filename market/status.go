// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/marketd/fault"
)

// Status - listing status
type Status uint64

// possible status values
const (
	Available   Status = 1
	Rented      Status = 2
	Leased      Status = 3
	Purchased   Status = 4
	Unavailable Status = 5
)

// String - status name
func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case Rented:
		return "rented"
	case Leased:
		return "leased"
	case Purchased:
		return "purchased"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("status#%d", uint64(s))
	}
}

// IsValid - one of the defined values
func (s Status) IsValid() bool {
	return s >= Available && s <= Unavailable
}

// MarshalText - status as its name
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fault.ErrInvalidListingStatus
	}
	return []byte(s.String()), nil
}

// UnmarshalText - status from its name
func (s *Status) UnmarshalText(text []byte) error {
	status, err := StatusFromString(string(text))
	if nil != err {
		return err
	}
	*s = status
	return nil
}

// StatusFromString - parse a status name
func StatusFromString(in string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "available":
		return Available, nil
	case "rented":
		return Rented, nil
	case "leased":
		return Leased, nil
	case "purchased":
		return Purchased, nil
	case "unavailable":
		return Unavailable, nil
	default:
		return 0, fault.ErrInvalidListingStatus
	}
}
