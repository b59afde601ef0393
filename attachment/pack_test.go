// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attachment_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/util"
)

// test the encoding of every variant against fixed byte layouts
//
// ensures that encode->unpack returns the same original value
func TestEncode(t *testing.T) {
	testItems := []struct {
		name      string
		a         attachment.Attachment
		versioned bool
		expected  []byte
	}{
		{
			name: "account info, empty description",
			a: &attachment.AccountInfo{
				Name:        "Alice",
				Description: "",
			},
			expected: []byte{
				0x05, 'A', 'l', 'i', 'c', 'e', 0x00, 0x00,
			},
		},
		{
			name: "account info, with description",
			a: &attachment.AccountInfo{
				Name:        "bob",
				Description: "second account",
			},
			expected: []byte{
				0x03, 'b', 'o', 'b', 0x0e, 0x00,
				's', 'e', 'c', 'o', 'n', 'd', ' ',
				'a', 'c', 'c', 'o', 'u', 'n', 't',
			},
		},
		{
			name: "alias assignment v1",
			a: &attachment.AliasAssignment{
				Version:   1,
				AliasName: "name1",
				AliasURI:  "mrd://7",
			},
			versioned: true,
			expected: []byte{
				0x01,
				0x05, 'n', 'a', 'm', 'e', '1',
				0x07, 0x00, 'm', 'r', 'd', ':', '/', '/', '7',
			},
		},
		{
			name: "alias assignment v0 has no version byte",
			a: &attachment.AliasAssignment{
				AliasName: "name1",
				AliasURI:  "",
			},
			expected: []byte{
				0x05, 'n', 'a', 'm', 'e', '1',
				0x00, 0x00,
			},
		},
		{
			name: "alias buy v1",
			a: &attachment.AliasBuy{
				Version:   1,
				AliasName: "offer",
			},
			versioned: true,
			expected: []byte{
				0x01, 0x05, 'o', 'f', 'f', 'e', 'r',
			},
		},
		{
			name: "alias sell v1",
			a: &attachment.AliasSell{
				Version:   1,
				AliasName: "offer",
				Price:     1000,
			},
			versioned: true,
			expected: []byte{
				0x01, 0x05, 'o', 'f', 'f', 'e', 'r',
				0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "text message",
			a: &attachment.ArbitraryMessage{
				Message: []byte("hello"),
				IsText:  true,
			},
			expected: []byte{
				0x05, 0x00, 0x00, 0x80, 'h', 'e', 'l', 'l', 'o',
			},
		},
		{
			name: "binary message",
			a: &attachment.ArbitraryMessage{
				Message: []byte{0xde, 0xad, 0xbe, 0xef},
			},
			expected: []byte{
				0x04, 0x00, 0x00, 0x00, 0xde, 0xad, 0xbe, 0xef,
			},
		},
		{
			name: "balance leasing v1",
			a: &attachment.BalanceLeasing{
				Version: 1,
				Period:  1440,
			},
			versioned: true,
			expected: []byte{
				0x01, 0xa0, 0x05,
			},
		},
		{
			name: "currency minting v1",
			a: &attachment.CurrencyMinting{
				Version:    1,
				Nonce:      2,
				CurrencyID: 0x0102030405060708,
				Units:      1000,
				Counter:    3,
			},
			versioned: true,
			expected: []byte{
				0x01,
				0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
				0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "poll creation",
			a: &attachment.PollCreation{
				PollName:           "P",
				PollDescription:    "d",
				PollOptions:        []string{"ay", "nay"},
				MinNumberOfOptions: 1,
				MaxNumberOfOptions: 2,
				OptionsAreBinary:   true,
			},
			expected: []byte{
				0x01, 0x00, 'P',
				0x01, 0x00, 'd',
				0x02,
				0x02, 0x00, 'a', 'y',
				0x03, 0x00, 'n', 'a', 'y',
				0x01, 0x02, 0x01,
			},
		},
		{
			name: "vote casting",
			a: &attachment.VoteCasting{
				PollID: 5,
				Votes:  []int8{1, -1, 0},
			},
			expected: []byte{
				0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x01, 0xff, 0x00,
			},
		},
	}

	for _, item := range testItems {
		t.Run(item.name, func(t *testing.T) {
			if err := item.a.Validate(); nil != err {
				t.Fatalf("validate error: %s", err)
			}

			packed := item.a.Encode()
			if !bytes.Equal(packed, item.expected) {
				t.Errorf("pack differs: %x  expected: %x", packed, item.expected)
				t.Errorf("%s", util.FormatBytes("expected", packed))
			}

			// decode must reproduce the original field for field
			txType, subtype := item.a.TransactionType()
			c := util.NewCursor(packed)
			back, err := attachment.Unpack(txType, subtype, c, item.versioned)
			if nil != err {
				t.Fatalf("unpack error: %s", err)
			}
			if 0 != c.Remaining() {
				t.Fatalf("unpack left %d bytes", c.Remaining())
			}
			reEncoded := back.Encode()
			if !bytes.Equal(reEncoded, packed) {
				t.Fatalf("re-encode differs: %x  expected: %x", reEncoded, packed)
			}
		})
	}
}

// test the text flag round trips through decode
func TestMessageTextFlag(t *testing.T) {
	m := &attachment.ArbitraryMessage{Message: []byte("hello"), IsText: true}

	c := util.NewCursor(m.Encode())
	back, err := attachment.Unpack(attachment.TypeMessaging, attachment.SubtypeArbitraryMessage, c, false)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	message := back.(*attachment.ArbitraryMessage)
	if !message.IsText {
		t.Errorf("text flag was lost")
	}
	if string(message.Message) != "hello" {
		t.Errorf("message: %q  expected: %q", message.Message, "hello")
	}
}

// test unknown tags are rejected
func TestUnpackUnknownTag(t *testing.T) {
	c := util.NewCursor([]byte{0x00})
	_, err := attachment.Unpack(9, 9, c, false)
	if fault.ErrUnknownTransactionType != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrUnknownTransactionType)
	}
}

// test truncated payloads are rejected
func TestUnpackTruncated(t *testing.T) {
	full := (&attachment.AliasAssignment{Version: 1, AliasName: "name1", AliasURI: "mrd://7"}).Encode()
	for cut := 0; cut < len(full); cut += 1 {
		c := util.NewCursor(full[:cut])
		_, err := attachment.Unpack(attachment.TypeMessaging, attachment.SubtypeAliasAssignment, c, true)
		if fault.ErrTransactionTooShort != err {
			t.Fatalf("cut %d: error: %v  expected: %v", cut, err, fault.ErrTransactionTooShort)
		}
	}
}

// test the version byte agreement check
//
// variants without a version byte always agree with either layout
func TestCheckVersion(t *testing.T) {
	testItems := []struct {
		name      string
		a         attachment.Attachment
		versioned bool
		err       error
	}{
		{"alias assignment v1 versioned", &attachment.AliasAssignment{Version: 1, AliasName: "ok"}, true, nil},
		{"alias assignment v0 unversioned", &attachment.AliasAssignment{AliasName: "ok"}, false, nil},
		{"alias assignment v0 versioned", &attachment.AliasAssignment{AliasName: "ok"}, true, fault.ErrWrongAttachmentVersion},
		{"alias buy v1 unversioned", &attachment.AliasBuy{Version: 1, AliasName: "ok"}, false, fault.ErrWrongAttachmentVersion},
		{"alias sell v1 versioned", &attachment.AliasSell{Version: 1, AliasName: "ok"}, true, nil},
		{"leasing v1 unversioned", &attachment.BalanceLeasing{Version: 1, Period: 1440}, false, fault.ErrWrongAttachmentVersion},
		{"minting v0 versioned", &attachment.CurrencyMinting{CurrencyID: 7, Units: 1}, true, fault.ErrWrongAttachmentVersion},
		{"message either way", &attachment.ArbitraryMessage{Message: []byte("hello")}, true, nil},
		{"poll either way", &attachment.PollCreation{PollName: "p"}, false, nil},
	}

	for _, item := range testItems {
		t.Run(item.name, func(t *testing.T) {
			err := attachment.CheckVersion(item.a, item.versioned)
			if err != item.err {
				t.Errorf("error: %v  expected: %v", err, item.err)
			}
		})
	}
}

// test validation boundaries
func TestValidate(t *testing.T) {
	alias100 := strings.Repeat("a", 100)

	testItems := []struct {
		name string
		a    attachment.Attachment
		err  error
	}{
		{"alias name at limit", &attachment.AliasAssignment{AliasName: alias100}, nil},
		{"alias name over limit", &attachment.AliasAssignment{AliasName: alias100 + "a"}, fault.ErrNameTooLong},
		{"alias name empty", &attachment.AliasAssignment{}, fault.ErrAliasNameIsEmpty},
		{"alias name with space", &attachment.AliasAssignment{AliasName: "not valid"}, fault.ErrNameIsNotAlphanumeric},
		{"alias uri over limit", &attachment.AliasAssignment{AliasName: "ok", AliasURI: strings.Repeat("u", 1001)}, fault.ErrUriTooLong},
		{"negative sell price", &attachment.AliasSell{AliasName: "ok", Price: -1}, fault.ErrInvalidPrice},
		{"account name over limit", &attachment.AccountInfo{Name: alias100 + "a"}, fault.ErrNameTooLong},
		{"account info empty is fine", &attachment.AccountInfo{}, nil},
		{"message at limit", &attachment.ArbitraryMessage{Message: bytes.Repeat([]byte{0x55}, 1000)}, nil},
		{"message over limit", &attachment.ArbitraryMessage{Message: bytes.Repeat([]byte{0x55}, 1001)}, fault.ErrMessageTooLong},
		{"leasing below minimum", &attachment.BalanceLeasing{Period: 1439}, fault.ErrInvalidLeasingPeriod},
		{"leasing at minimum", &attachment.BalanceLeasing{Period: 1440}, nil},
		{"minting without currency", &attachment.CurrencyMinting{Units: 1}, fault.ErrMissingAttachmentField},
		{"minting zero units", &attachment.CurrencyMinting{CurrencyID: 7}, fault.ErrInvalidCurrencyUnits},
		{"poll without options", &attachment.PollCreation{PollName: "p"}, fault.ErrInvalidPollOptions},
		{
			"poll min over max",
			&attachment.PollCreation{
				PollName:           "p",
				PollOptions:        []string{"a", "b"},
				MinNumberOfOptions: 2,
				MaxNumberOfOptions: 1,
			},
			fault.ErrInvalidPollOptions,
		},
		{"vote without votes", &attachment.VoteCasting{PollID: 1}, fault.ErrInvalidVotes},
		{"vote without poll", &attachment.VoteCasting{Votes: []int8{1}}, fault.ErrMissingAttachmentField},
	}

	for _, item := range testItems {
		t.Run(item.name, func(t *testing.T) {
			err := item.a.Validate()
			if err != item.err {
				t.Errorf("error: %v  expected: %v", err, item.err)
			}
		})
	}
}
