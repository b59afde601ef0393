// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/meridianchain/go-meridian/account"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
)

const addressAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// test the all-zero codeword
func TestZero(t *testing.T) {
	s := account.String(0)
	expected := "MRD-2222-2222-2222-22222"
	if s != expected {
		t.Fatalf("address: %q  expected: %q", s, expected)
	}
	id, err := account.Parse(s)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if 0 != id {
		t.Fatalf("id: %d  expected: 0", id)
	}
}

// test the grouping of the encoded form
func TestShape(t *testing.T) {
	s := account.String(18446744073709551615)
	if !strings.HasPrefix(s, "MRD-") {
		t.Fatalf("missing prefix: %q", s)
	}
	groups := strings.Split(strings.TrimPrefix(s, "MRD-"), "-")
	expected := []int{4, 4, 4, 5}
	if len(groups) != len(expected) {
		t.Fatalf("groups: %d  expected: %d", len(groups), len(expected))
	}
	for i, g := range groups {
		if len(g) != expected[i] {
			t.Errorf("group %d: %q  expected length: %d", i, g, expected[i])
		}
		for _, c := range g {
			if !strings.ContainsRune(addressAlphabet, c) {
				t.Errorf("group %d: %q contains invalid symbol %q", i, g, c)
			}
		}
	}
}

// test encode/decode round trip over random identifiers
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0x5eed))
	for i := 0; i < 2000; i += 1 {
		id := ident.ID(r.Uint64())
		back, err := account.Parse(account.String(id))
		if nil != err {
			t.Fatalf("parse(%q) error: %s", account.String(id), err)
		}
		if back != id {
			t.Fatalf("round trip: %d  expected: %d", back, id)
		}
	}
}

// test that any single corrupted symbol is rejected
//
// the code has minimum distance five, so single symbol corruption is
// always detected, not merely with high probability
func TestCorruption(t *testing.T) {
	r := rand.New(rand.NewSource(0xc0de))
	for i := 0; i < 200; i += 1 {
		id := ident.ID(r.Uint64())
		s := account.String(id)
		for position := len("MRD-"); position < len(s); position += 1 {
			if '-' == s[position] {
				continue
			}
			for _, replacement := range []byte(addressAlphabet) {
				if replacement == s[position] {
					continue
				}
				corrupted := s[:position] + string(replacement) + s[position+1:]
				back, err := account.Parse(corrupted)
				if nil == err {
					t.Fatalf("corrupted %q -> %q decoded to %d, expected rejection", s, corrupted, back)
				}
				break // one replacement per position is enough
			}
		}
	}
}

// test that a dropped symbol is rejected
func TestTruncated(t *testing.T) {
	s := account.String(8264393271034375103)
	_, err := account.Parse(s[:len(s)-1])
	if fault.ErrChecksumMismatch != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrChecksumMismatch)
	}
}

// test prefix enforcement
func TestPrefix(t *testing.T) {
	s := account.String(12345)
	_, err := account.Parse(strings.TrimPrefix(s, "MRD-"))
	if fault.ErrAccountPrefixMissing != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrAccountPrefixMissing)
	}
	_, err = account.Parse("NXT-" + strings.TrimPrefix(s, "MRD-"))
	if fault.ErrAccountPrefixMissing != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrAccountPrefixMissing)
	}
}

// test that both textual forms parse
func TestParseAny(t *testing.T) {
	id := ident.ID(9871239871234)

	fromAddress, err := account.ParseAny(account.String(id))
	if nil != err {
		t.Fatalf("address form error: %s", err)
	}
	if fromAddress != id {
		t.Fatalf("address form: %d  expected: %d", fromAddress, id)
	}

	fromDecimal, err := account.ParseAny("9871239871234")
	if nil != err {
		t.Fatalf("decimal form error: %s", err)
	}
	if fromDecimal != id {
		t.Fatalf("decimal form: %d  expected: %d", fromDecimal, id)
	}

	_, err = account.ParseAny("")
	if fault.ErrInvalidIdentifier != err {
		t.Fatalf("empty: %v  expected: %v", err, fault.ErrInvalidIdentifier)
	}
}
