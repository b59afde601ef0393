// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAccountPrefixMissing   = InvalidError("account prefix is missing")
	ErrAliasNameIsEmpty       = InvalidError("alias name is empty")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrCryptoFailed           = ProcessError("crypto operation failed")
	ErrDescriptionTooLong     = LengthError("description too long")
	ErrHashTooShort           = LengthError("hash too short")
	ErrInvalidDeadline        = InvalidError("deadline must be 1..1440 minutes")
	ErrIdentityNameExists     = ExistsError("identity name already exists")
	ErrIdentityNameNotFound   = NotFoundError("identity name not found")
	ErrInvalidEcBlock         = InvalidError("invalid economic clustering block")
	ErrInvalidIdentifier      = InvalidError("invalid identifier")
	ErrInvalidCurrencyUnits   = InvalidError("invalid currency units")
	ErrInvalidLeasingPeriod   = InvalidError("invalid leasing period")
	ErrInvalidPollOptions     = InvalidError("invalid poll options")
	ErrInvalidPrice           = InvalidError("invalid price")
	ErrInvalidPublicKey       = LengthError("public key must be 32 bytes")
	ErrInvalidSeed            = InvalidError("invalid seed")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidSignatureLength = LengthError("signature must be 64 bytes")
	ErrInvalidVotes           = InvalidError("invalid votes")
	ErrMalformedAttachment    = ProcessError("attachment field is malformed")
	ErrMessageTooLong         = LengthError("message too long")
	ErrMissingAttachmentField = NotFoundError("required attachment field is missing")
	ErrNameIsNotAlphanumeric  = InvalidError("name is not alphanumeric")
	ErrNameTooLong            = LengthError("name too long")
	ErrNodeReplyIsNotValid    = ProcessError("node reply is not valid")
	ErrPasswordMismatch       = InvalidError("passwords do not match")
	ErrPasswordTooShort       = LengthError("password must be at least 8 characters")
	ErrPollOptionTooLong      = LengthError("poll option too long")
	ErrTooManyPollOptions     = LengthError("too many poll options")
	ErrTransactionIsNotSigned = InvalidError("transaction is not signed")
	ErrTrailingData           = LengthError("unexpected trailing data")
	ErrTransactionTooShort    = LengthError("transaction too short")
	ErrUnknownTransactionType = NotFoundError("unknown transaction type")
	ErrUriTooLong             = LengthError("uri too long")
	ErrWrongAttachmentVersion = InvalidError("attachment version conflicts with transaction version")
	ErrWrongPassword          = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
