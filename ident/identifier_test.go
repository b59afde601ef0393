// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ident_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
)

// test identifier derivation from a hash
func TestFromHash(t *testing.T) {
	testItems := []struct {
		hash     []byte
		expected ident.ID
	}{
		{[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 1},
		{[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, 0x8000000000000000},
		{
			// only the first eight bytes count
			[]byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01, 0xff, 0xff},
			0x0123456789abcdef,
		},
	}

	for i, item := range testItems {
		id, err := ident.FromHash(item.hash)
		if nil != err {
			t.Fatalf("%d: unexpected error: %s", i, err)
		}
		if id != item.expected {
			t.Errorf("%d: id: %d  expected: %d", i, id, item.expected)
		}
	}
}

// test that a truncated hash is rejected
func TestFromHashTooShort(t *testing.T) {
	_, err := ident.FromHash([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	if fault.ErrHashTooShort != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrHashTooShort)
	}
}

// test the decimal string round trip over random values
func TestStringRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0x1d3f))
	for i := 0; i < 1000; i += 1 {
		v := ident.ID(r.Uint64())
		back, err := ident.Parse(v.String())
		if nil != err {
			t.Fatalf("parse(%q) error: %s", v.String(), err)
		}
		if back != v {
			t.Fatalf("round trip: %d  expected: %d", back, v)
		}
	}
}

// test parsing of edge and error cases
func TestParse(t *testing.T) {
	testItems := []struct {
		s        string
		expected ident.ID
		err      error
	}{
		{"", 0, nil}, // absent field sentinel
		{"0", 0, nil},
		{"18446744073709551615", 18446744073709551615, nil},
		{"18446744073709551616", 0, fault.ErrInvalidIdentifier}, // 2^64
		{"-1", 0, fault.ErrInvalidIdentifier},
		{"+1", 0, fault.ErrInvalidIdentifier},
		{"12ab", 0, fault.ErrInvalidIdentifier},
		{"MRD-0000", 0, fault.ErrInvalidIdentifier},
	}

	for i, item := range testItems {
		id, err := ident.Parse(item.s)
		if err != item.err {
			t.Errorf("%d: parse(%q) error: %v  expected: %v", i, item.s, err, item.err)
			continue
		}
		if id != item.expected {
			t.Errorf("%d: parse(%q): %d  expected: %d", i, item.s, id, item.expected)
		}
	}
}

// test the JSON form is the decimal string
func TestJSON(t *testing.T) {
	type wrapper struct {
		Tx ident.ID `json:"transaction"`
	}

	w := wrapper{Tx: 9218299089428974123}
	buffer, err := json.Marshal(w)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	expected := `{"transaction":"9218299089428974123"}`
	if string(buffer) != expected {
		t.Fatalf("json: %s  expected: %s", buffer, expected)
	}

	var back wrapper
	err = json.Unmarshal(buffer, &back)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if back.Tx != w.Tx {
		t.Fatalf("round trip: %d  expected: %d", back.Tx, w.Tx)
	}
}
