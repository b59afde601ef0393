// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/signing"
)

func TestIdentityRoundTrip(t *testing.T) {
	seed, err := signing.NewSeed(true)
	if nil != err {
		t.Fatalf("new seed error: %s", err)
	}

	config := &Configuration{
		Network:    "testing",
		Identities: map[string]Identity{},
	}

	err = config.AddIdentity("first", "test identity", seed, "password-1")
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	// the stored form must not contain the seed
	stored := config.Identities["first"]
	if stored.Data == seed {
		t.Fatal("seed stored in the clear")
	}

	private, err := config.Private("password-1", "first")
	if nil != err {
		t.Fatalf("decrypt error: %s", err)
	}
	if private.Seed != seed {
		t.Errorf("seed: %q  expected: %q", private.Seed, seed)
	}

	_, err = config.Private("password-2", "first")
	if fault.ErrWrongPassword != err {
		t.Errorf("error: %v  expected: %v", err, fault.ErrWrongPassword)
	}

	_, err = config.Private("password-1", "nonesuch")
	if fault.ErrIdentityNameNotFound != err {
		t.Errorf("error: %v  expected: %v", err, fault.ErrIdentityNameNotFound)
	}

	// adding the same name again must fail
	err = config.AddIdentity("first", "again", seed, "password-1")
	if fault.ErrIdentityNameExists != err {
		t.Errorf("error: %v  expected: %v", err, fault.ErrIdentityNameExists)
	}

	// a signer must be derivable from the stored identity
	signer, err := config.Signer("password-1", "first")
	if nil != err {
		t.Fatalf("signer error: %s", err)
	}
	if signing.PublicKeySize != len(signer.PublicKey()) {
		t.Errorf("public key size: %d", len(signer.PublicKey()))
	}
}

func TestSaltRoundTrip(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("make salt error: %s", err)
	}

	text, err := salt.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	back := new(Salt)
	if err := back.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if *back != *salt {
		t.Errorf("salt: %s  expected: %s", back, salt)
	}

	if err := back.UnmarshalText([]byte("deadbeef")); fault.ErrCryptoFailed != err {
		t.Errorf("error: %v  expected: %v", err, fault.ErrCryptoFailed)
	}
}
