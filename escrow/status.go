// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"fmt"

	"github.com/bitmark-inc/marketd/fault"
)

// Status - custody state of an escrow record
type Status uint8

// possible states; Completed and Refunded are terminal
const (
	Active    Status = 1
	Completed Status = 2
	Refunded  Status = 3
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	case Refunded:
		return "Refunded"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// MarshalText - status name for JSON
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case Active, Completed, Refunded:
		return []byte(s.String()), nil
	default:
		return nil, fault.ErrInvalidItem
	}
}
