// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ident - 64 bit unsigned identifiers
//
// accounts, transactions and blocks are all named by an unsigned
// 64 bit identifier derived from the low eight bytes of a hash;
// the canonical textual form is the unsigned decimal string and
// that is also the JSON representation
package ident

import (
	"encoding/binary"
	"strconv"

	"github.com/meridianchain/go-meridian/fault"
)

// ID - the type for an account, transaction or block identifier
type ID uint64

// minimum hash length for identifier derivation
const minimumHashLength = 8

// FromHash - derive an identifier from a hash
//
// takes the first eight bytes of the hash as a little-endian 64 bit
// word; this is one way and lossy, recovering the hash from an
// identifier is not possible
func FromHash(hash []byte) (ID, error) {
	if len(hash) < minimumHashLength {
		return 0, fault.ErrHashTooShort
	}
	return ID(binary.LittleEndian.Uint64(hash[:minimumHashLength])), nil
}

// Parse - convert an unsigned decimal string to an identifier
//
// the empty string is the "not present" sentinel used by optional
// fields and maps to zero
func Parse(s string) (ID, error) {
	if "" == s {
		return 0, nil
	}
	value, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidIdentifier
	}
	return ID(value), nil
}

// String - canonical unsigned decimal form for use by the fmt package (for %s)
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// GoString - tagged decimal form for use by the fmt package (for %#v)
func (id ID) GoString() string {
	return "<id:" + id.String() + ">"
}

// MarshalText - convert an identifier to its decimal JSON form
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert the decimal JSON form to an identifier
func (id *ID) UnmarshalText(s []byte) error {
	value, err := Parse(string(s))
	if nil != err {
		return err
	}
	*id = value
	return nil
}
