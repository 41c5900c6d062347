// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Each error belongs to exactly one class so that callers (RPC
// clients, retry layers) can branch on the kind of failure:
//
//   NotFoundError      - listing, agreement or escrow record absent
//   StateError         - operation invalid for the current status
//   AuthorisationError - caller cannot prove the required identity
//   AccountingError    - insufficient shares or balance
//   ConfigurationError - unsupported currency, fixed share structure
//   InvalidError       - malformed arguments
//   ProcessError       - infrastructure failures
package fault
