// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement

import (
	"fmt"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
)

// Type - kind of transaction recorded
type Type uint8

// agreement types
const (
	Purchase Type = 1
	Lease    Type = 2
)

// Status - lifecycle state
type Status uint8

// Completed and Terminated are terminal; Paused is reserved and no
// operation enters it
const (
	Created    Status = 1
	Active     Status = 2
	Completed  Status = 3
	Terminated Status = 4
	Paused     Status = 5
)

// Agreement - one purchase or lease
type Agreement struct {
	Id        uint64           `json:"id,string"`
	Type      Type             `json:"type"`
	User      *account.Account `json:"user"`
	Owner     *account.Account `json:"owner"`
	ListingId uint64           `json:"listingId,string"`
	Timestamp uint64           `json:"timestamp"`
	Shares    uint64           `json:"shares"`
	Duration  uint64           `json:"duration,omitempty"`
	EndTime   uint64           `json:"endTime,omitempty"`
	Status    Status           `json:"status"`
}

// IsRental - true for a lease
func (a *Agreement) IsRental() bool {
	return Lease == a.Type
}

// IsFinished - true once no further transition is possible
func (s Status) IsFinished() bool {
	return Completed == s || Terminated == s
}

func (t Type) String() string {
	switch t {
	case Purchase:
		return "Purchase"
	case Lease:
		return "Lease"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// MarshalText - type name for JSON
func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case Purchase, Lease:
		return []byte(t.String()), nil
	default:
		return nil, fault.ErrInvalidItem
	}
}

func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	case Terminated:
		return "Terminated"
	case Paused:
		return "Paused"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// MarshalText - status name for JSON
func (s Status) MarshalText() ([]byte, error) {
	if s < Created || s > Paused {
		return nil, fault.ErrInvalidItem
	}
	return []byte(s.String()), nil
}
