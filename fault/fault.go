// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccountingError GenericError
type AuthorisationError GenericError
type ConfigurationError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAgreementActive            = StateError("agreement is already active")
	ErrAgreementFinished          = StateError("agreement is already finished")
	ErrAgreementNotCreated        = StateError("agreement is not in created state")
	ErrAgreementNotFound          = NotFoundError("agreement not found")
	ErrAgreementNotOwnedByCaller  = AuthorisationError("agreement not owned by caller")
	ErrAgreementTypeMismatch      = StateError("agreement type does not match request")
	ErrAlreadyInitialised         = StateError("already initialised")
	ErrAmountOutOfRange           = InvalidError("amount out of range")
	ErrCannotDecodeAccount        = InvalidError("cannot decode account")
	ErrCertificateFileExists      = ProcessError("certificate file already exists")
	ErrChecksumMismatch           = InvalidError("checksum mismatch")
	ErrCurrencyNotSupported       = ConfigurationError("currency not supported")
	ErrEscrowActive               = StateError("escrow is already active")
	ErrEscrowNotActive            = StateError("escrow is not active")
	ErrEscrowNotFound             = NotFoundError("escrow not found")
	ErrInsufficientBalance        = AccountingError("insufficient balance")
	ErrInsufficientShares         = AccountingError("insufficient shares")
	ErrInsufficientSharesForSale  = AccountingError("insufficient shares for purchase")
	ErrInvalidAmount              = InvalidError("invalid amount")
	ErrInvalidChain               = ConfigurationError("invalid chain")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCurrency            = InvalidError("invalid currency")
	ErrInvalidDuration            = InvalidError("invalid duration")
	ErrInvalidIPAddress           = InvalidError("invalid IP address")
	ErrInvalidItem                = InvalidError("invalid item")
	ErrInvalidKeyLength           = InvalidError("invalid key length")
	ErrInvalidKeyType             = InvalidError("invalid key type")
	ErrInvalidListingStatus       = InvalidError("invalid listing status")
	ErrInvalidPortNumber          = InvalidError("invalid port number")
	ErrInvalidPrice               = InvalidError("invalid price")
	ErrInvalidPrivateKeyFile      = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile       = InvalidError("invalid public key file")
	ErrInvalidRate                = ConfigurationError("invalid exchange rate")
	ErrInvalidSharesDistribution  = InvalidError("reserved shares exceed total shares")
	ErrInvalidSignature           = AuthorisationError("invalid signature")
	ErrKeyFileExists              = ProcessError("key file already exists")
	ErrListingNotAvailable        = StateError("listing not available")
	ErrListingNotFound            = NotFoundError("listing not found")
	ErrListingNotOwnedByCaller    = AuthorisationError("listing not owned by caller")
	ErrMissingParameters          = ConfigurationError("missing parameters")
	ErrNoSharesToDistribute       = InvalidError("no shares to distribute over")
	ErrNotAuthorised              = AuthorisationError("caller not authorised")
	ErrNotAvailableDuringShutdown = ProcessError("not available during shutdown")
	ErrNotInitialised             = StateError("not initialised")
	ErrNotPrivateKey              = InvalidError("not a private key")
	ErrNotPublicKey               = InvalidError("not a public key")
	ErrNotUpdater                 = AuthorisationError("caller is not a price updater")
	ErrPriceChangeTooLarge        = StateError("price change exceeds maximum")
	ErrProceedsNotFound           = NotFoundError("sale proceeds record not found")
	ErrPurchaseNotAllowed         = StateError("listing does not allow purchase")
	ErrRateLimiting               = ProcessError("rate limiting")
	ErrRentNotAllowed             = StateError("listing does not allow rent")
	ErrRequestExpired             = AuthorisationError("request timestamp outside allowed window")
	ErrRequestReplayed            = AuthorisationError("request already executed")
	ErrSameAccount                = InvalidError("buyer and seller are the same account")
	ErrShareStructureFixed        = ConfigurationError("share structure is already established")
	ErrStalePrice                 = StateError("price is stale")
	ErrTokenNotFound              = NotFoundError("token not found")
	ErrTransactionInUse           = ProcessError("storage transaction already in use")
	ErrTransactionNotStarted      = ProcessError("storage transaction not started")
	ErrTruncatedRecord            = ProcessError("truncated record")
	ErrUnknownRateSource          = ConfigurationError("unknown rate source")
	ErrUnknownSinkTransport       = ConfigurationError("unknown event sink transport")
	ErrUpdateTooFrequent          = StateError("price update too frequent")
	ErrWrongNetworkForPublicKey   = InvalidError("wrong network for public key")
	ErrZeroShares                 = AccountingError("share quantity must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccountingError) Error() string    { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ConfigurationError) Error() string { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error, unwrapping as necessary
func IsErrAccounting(e error) bool    { var t AccountingError; return errors.As(e, &t) }
func IsErrAuthorisation(e error) bool { var t AuthorisationError; return errors.As(e, &t) }
func IsErrConfiguration(e error) bool { var t ConfigurationError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool       { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool      { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool       { var t ProcessError; return errors.As(e, &t) }
func IsErrState(e error) bool         { var t StateError; return errors.As(e, &t) }
