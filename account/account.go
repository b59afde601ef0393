// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - human-readable account identifiers
//
// an account is named by an ident.ID; the human-readable form is the
// network prefix followed by the checksummed Reed-Solomon base-32
// encoding of that identifier, e.g.
//
//	MRD-XK4R-7VJU-6EQG-7R335
//
// the prefix guards against pasting an address from a different
// network, the Reed-Solomon symbols guard against typing errors
package account

import (
	"strings"

	"github.com/meridianchain/go-meridian/chain"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
)

// Codec - checksummed textual encoding of a 64 bit identifier
//
// Decode must reject corrupted input with fault.ErrChecksumMismatch
type Codec interface {
	Encode(id uint64) string
	Decode(s string) (uint64, error)
}

// the codec used for the standard address form
var standardCodec Codec = ReedSolomonCodec{}

// String - the prefixed human-readable form of an account identifier
func String(id ident.ID) string {
	return chain.AddressPrefix + "-" + standardCodec.Encode(uint64(id))
}

// Parse - decode a prefixed human-readable account string
//
// the network prefix is mandatory; the checksum must verify
func Parse(s string) (ident.ID, error) {
	prefix := chain.AddressPrefix + "-"
	if !strings.HasPrefix(s, prefix) {
		return 0, fault.ErrAccountPrefixMissing
	}
	id, err := standardCodec.Decode(strings.TrimPrefix(s, prefix))
	if nil != err {
		return 0, err
	}
	return ident.ID(id), nil
}

// ParseAny - decode either textual account form
//
// accepts the prefixed Reed-Solomon form or the plain unsigned
// decimal form
func ParseAny(s string) (ident.ID, error) {
	if strings.HasPrefix(s, chain.AddressPrefix+"-") {
		return Parse(s)
	}
	if "" == s {
		return 0, fault.ErrInvalidIdentifier
	}
	return ident.Parse(s)
}
