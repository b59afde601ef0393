// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"crypto/ed25519"

	"golang.org/x/crypto/sha3"

	"github.com/meridianchain/go-meridian/fault"
)

// EdSigner - ed25519 implementation of Signer
//
// ed25519 signatures are deterministic: signing the same message with
// the same credential always yields the same 64 bytes, which in turn
// makes transaction identifiers deterministic
type EdSigner struct {
	privateKey ed25519.PrivateKey
}

// NewSeedSigner - construct a signer from a 32 byte seed
func NewSeedSigner(seed []byte) (*EdSigner, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidSeed
	}
	return &EdSigner{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// NewSecretSigner - construct a signer from a secret phrase
//
// the seed is the SHA3-256 digest of the phrase, so the same phrase
// always yields the same account
func NewSecretSigner(secret string) *EdSigner {
	seed := sha3.Sum256([]byte(secret))
	return &EdSigner{privateKey: ed25519.NewKeyFromSeed(seed[:])}
}

// PublicKey - the 32 byte ed25519 public key
func (s *EdSigner) PublicKey() []byte {
	return s.privateKey.Public().(ed25519.PublicKey)
}

// Sign - ed25519 signature over the message
func (s *EdSigner) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, message), nil
}

// Verify - check a signature against a public key
//
// decode-side counterpart of Sign; not part of the Signer contract
// because verification needs no credential
func Verify(publicKey []byte, message []byte, signature []byte) error {
	if ed25519.PublicKeySize != len(publicKey) {
		return fault.ErrInvalidPublicKey
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignatureLength
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
