// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signing - the cryptographic collaborators of the codec
//
// the transaction codec never touches key material directly: it is
// handed a Signer holding the credential and a Hasher for digests.
// The implementations here are the standard ones (ed25519, SHA3-256);
// hardware tokens or remote signers only need to satisfy Signer
package signing

import (
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
)

// sizes fixed by the wire format
const (
	PublicKeySize = 32
	SignatureSize = 64
	DigestSize    = 32
)

// Signer - produces transaction signatures
//
// the credential is captured when the signer is constructed and never
// passed per call
type Signer interface {
	// PublicKey - the 32 byte public key of the credential
	PublicKey() []byte

	// Sign - a 64 byte signature over the message
	Sign(message []byte) ([]byte, error)
}

// Hasher - produces 32 byte digests
type Hasher interface {
	// Digest - hash the concatenation of the chunks
	Digest(chunks ...[]byte) []byte
}

// PublicKeyID - derive the account identifier of a public key
//
// the identifier is the hash-truncation of the key digest, the same
// derivation used for transaction identifiers
func PublicKeyID(publicKey []byte, hasher Hasher) (ident.ID, error) {
	if PublicKeySize != len(publicKey) {
		return 0, fault.ErrInvalidPublicKey
	}
	return ident.FromHash(hasher.Digest(publicKey))
}
