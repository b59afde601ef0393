// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package attachment - the polymorphic transaction payloads
//
// every transaction carries a (type, subtype) tag; most tags own a
// payload variant with its own byte-exact wire layout.  The set of
// variants is closed: the dispatch table is built at initialisation
// and never changes, so it is safe for concurrent readers.
//
// an attachment never knows the transaction that carries it
package attachment

import (
	"github.com/meridianchain/go-meridian/ident"
)

// transaction type codes
const (
	TypePayment        uint8 = 0
	TypeMessaging      uint8 = 1
	TypeAccountControl uint8 = 4
	TypeMonetarySystem uint8 = 5
)

// subtype codes within each type
const (
	SubtypePaymentOrdinary uint8 = 0

	SubtypeArbitraryMessage uint8 = 0
	SubtypeAliasAssignment  uint8 = 1
	SubtypePollCreation     uint8 = 2
	SubtypeVoteCasting      uint8 = 3
	SubtypeAccountInfo      uint8 = 5
	SubtypeAliasSell        uint8 = 6
	SubtypeAliasBuy         uint8 = 7

	SubtypeBalanceLeasing uint8 = 0

	SubtypeCurrencyMinting uint8 = 7
)

// field limits
const (
	maxAliasNameLength   = 100
	maxAliasURILength    = 1000
	maxAccountNameLength = 100
	maxDescriptionLength = 1000
	maxMessageLength     = 1000
	maxPollNameLength    = 100
	maxPollOptionLength  = 100
	maxPollOptionCount   = 100
	maxVoteCount         = 100
	minLeasingPeriod     = 1440
)

// messageIsTextFlag - high bit of the 32 bit message length word
const messageIsTextFlag uint32 = 0x80000000

// flag bits contributed to a version ≥ 1 transaction
const (
	flagHasMessage uint32 = 0x01
)

// Attachment - one payload variant
//
// Encode assumes a valid attachment; run Validate first on anything
// assembled from caller or node supplied fields
type Attachment interface {
	// TransactionType - the owning (type, subtype) tag
	TransactionType() (uint8, uint8)

	// Encode - the deterministic wire bytes of the payload
	Encode() []byte

	// Flags - bitmask merged into a version ≥ 1 transaction
	Flags() uint32

	// Validate - check field lengths and character constraints
	Validate() error
}

// AccountInfo - set a public name and description on the sender account
type AccountInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AliasAssignment - bind an alias name to a URI, or reassign it
type AliasAssignment struct {
	Version   uint8  `json:"version"`
	AliasName string `json:"alias"`
	AliasURI  string `json:"uri"`
}

// AliasBuy - accept a pending alias sale, sent by the buyer
type AliasBuy struct {
	Version   uint8  `json:"version"`
	AliasName string `json:"alias"`
}

// AliasSell - offer an alias for sale, price in minor units
//
// a price of zero is a direct transfer to the recipient
type AliasSell struct {
	Version   uint8  `json:"version"`
	AliasName string `json:"alias"`
	Price     int64  `json:"priceQNT,string"`
}

// ArbitraryMessage - free-form payload, text or binary
type ArbitraryMessage struct {
	Message []byte
	IsText  bool
}

// BalanceLeasing - lease the account's effective balance to the
// recipient for a number of blocks
type BalanceLeasing struct {
	Version uint8  `json:"version"`
	Period  uint16 `json:"period"`
}

// CurrencyMinting - submit a proof-of-work solution minting currency units
type CurrencyMinting struct {
	Version    uint8    `json:"version"`
	Nonce      int64    `json:"nonce"`
	CurrencyID ident.ID `json:"currency"`
	Units      int64    `json:"units,string"`
	Counter    int64    `json:"counter"`
}

// PollCreation - open a poll with a fixed option list
type PollCreation struct {
	PollName           string   `json:"name"`
	PollDescription    string   `json:"description"`
	PollOptions        []string `json:"options"`
	MinNumberOfOptions uint8    `json:"minNumberOfOptions"`
	MaxNumberOfOptions uint8    `json:"maxNumberOfOptions"`
	OptionsAreBinary   bool     `json:"optionsAreBinary"`
}

// VoteCasting - cast one signed byte per poll option
type VoteCasting struct {
	PollID ident.ID `json:"poll"`
	Votes  []int8   `json:"vote"`
}

// TransactionType - tag methods, one per variant

func (*AccountInfo) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypeAccountInfo
}

func (*AliasAssignment) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypeAliasAssignment
}

func (*AliasBuy) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypeAliasBuy
}

func (*AliasSell) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypeAliasSell
}

func (*ArbitraryMessage) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypeArbitraryMessage
}

func (*BalanceLeasing) TransactionType() (uint8, uint8) {
	return TypeAccountControl, SubtypeBalanceLeasing
}

func (*CurrencyMinting) TransactionType() (uint8, uint8) {
	return TypeMonetarySystem, SubtypeCurrencyMinting
}

func (*PollCreation) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypePollCreation
}

func (*VoteCasting) TransactionType() (uint8, uint8) {
	return TypeMessaging, SubtypeVoteCasting
}

// Flags - only a message flags its presence to the transaction header

func (*AccountInfo) Flags() uint32      { return 0 }
func (*AliasAssignment) Flags() uint32  { return 0 }
func (*AliasBuy) Flags() uint32         { return 0 }
func (*AliasSell) Flags() uint32        { return 0 }
func (*ArbitraryMessage) Flags() uint32 { return flagHasMessage }
func (*BalanceLeasing) Flags() uint32   { return 0 }
func (*CurrencyMinting) Flags() uint32  { return 0 }
func (*PollCreation) Flags() uint32     { return 0 }
func (*VoteCasting) Flags() uint32      { return 0 }

// Name - the conventional name of an attachment variant
func Name(a Attachment) (string, bool) {
	switch a.(type) {
	case *AccountInfo:
		return "AccountInfo", true
	case *AliasAssignment:
		return "AliasAssignment", true
	case *AliasBuy:
		return "AliasBuy", true
	case *AliasSell:
		return "AliasSell", true
	case *ArbitraryMessage:
		return "ArbitraryMessage", true
	case *BalanceLeasing:
		return "BalanceLeasing", true
	case *CurrencyMinting:
		return "CurrencyMinting", true
	case *PollCreation:
		return "PollCreation", true
	case *VoteCasting:
		return "VoteCasting", true
	default:
		return "*unknown*", false
	}
}
