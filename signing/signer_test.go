// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/signing"
)

// test the signer produces verifiable deterministic signatures
func TestSignerDeterministic(t *testing.T) {
	signer := signing.NewSecretSigner("correct horse battery staple")
	message := []byte("one transaction, packed")

	publicKey := signer.PublicKey()
	require.Len(t, publicKey, signing.PublicKeySize)

	one, err := signer.Sign(message)
	require.NoError(t, err)
	require.Len(t, one, signing.SignatureSize)

	two, err := signer.Sign(message)
	require.NoError(t, err)
	assert.Equal(t, one, two, "ed25519 signatures must be deterministic")

	assert.NoError(t, signing.Verify(publicKey, message, one))
	assert.Equal(t, fault.ErrInvalidSignature,
		signing.Verify(publicKey, append([]byte{0x01}, message...), one))
}

// test that the same phrase always yields the same account
func TestSecretSignerStable(t *testing.T) {
	a := signing.NewSecretSigner("phrase")
	b := signing.NewSecretSigner("phrase")
	c := signing.NewSecretSigner("phrase ")

	assert.Equal(t, a.PublicKey(), b.PublicKey())
	assert.NotEqual(t, a.PublicKey(), c.PublicKey())
}

// test seed signer construction
func TestSeedSigner(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	signer, err := signing.NewSeedSigner(seed)
	require.NoError(t, err)
	assert.Len(t, signer.PublicKey(), signing.PublicKeySize)

	_, err = signing.NewSeedSigner(seed[:31])
	assert.Equal(t, fault.ErrInvalidSeed, err)
}

// test public key identifier derivation
func TestPublicKeyID(t *testing.T) {
	signer := signing.NewSecretSigner("identity")

	id, err := signing.PublicKeyID(signer.PublicKey(), signing.SHA3{})
	require.NoError(t, err)
	assert.NotZero(t, id)

	again, err := signing.PublicKeyID(signer.PublicKey(), signing.SHA3{})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	_, err = signing.PublicKeyID([]byte{0x01}, signing.SHA3{})
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

// test the hasher digests concatenated chunks
func TestSHA3Chunks(t *testing.T) {
	h := signing.SHA3{}
	whole := h.Digest([]byte("helloworld"))
	split := h.Digest([]byte("hello"), []byte("world"))
	assert.Equal(t, whole, split)
	assert.Len(t, whole, signing.DigestSize)
}
