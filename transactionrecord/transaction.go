// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the transaction wire format
//
// a transaction is a fixed-layout little-endian header followed by
// the byte-exact payload of its attachment.  The header is 160 bytes
// for format version 0 and 176 bytes for version 1, which appends the
// flags word and the economic clustering binding.
//
// the identifier of a signed transaction is derived from a double
// hash: hash(unsigned bytes ‖ hash(signature)).  The outer digest is
// always taken over the *unsigned* byte form, never the signed form;
// this exact construction is what the network verifies and must not
// be changed
package transactionrecord

import (
	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/chain"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/signing"
)

// header sizes for the two format versions
const (
	HeaderV0Length = 160
	HeaderV1Length = 176
)

// fixed field widths
const (
	ReferencedHashLength = 32
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - one ledger transaction
//
// treat a transaction as immutable once produced by NewTransaction,
// Sign or Unpack: nothing recomputes the derived hash and identifier
// after construction
type Transaction struct {
	Version         uint8                 `json:"version"`
	Type            uint8                 `json:"type"`
	Subtype         uint8                 `json:"subtype"`
	Timestamp       int32                 `json:"timestamp"` // seconds since the network epoch
	Deadline        uint16                `json:"deadline"`  // minutes
	SenderPublicKey []byte                `json:"-"`
	RecipientID     ident.ID              `json:"recipient"`
	Amount          int64                 `json:"amountQNT,string"`
	Fee             int64                 `json:"feeQNT,string"`
	RefHash         []byte                `json:"-"` // 32 bytes or nil
	Signature       []byte                `json:"-"` // 64 bytes, nil until signed
	Flags           uint32                `json:"flags"`
	ECBlockHeight   int32                 `json:"ecBlockHeight"`
	ECBlockID       ident.ID              `json:"ecBlockId"`
	Attachment      attachment.Attachment `json:"attachment,omitempty"`

	// derived, frozen after signing or unpacking
	fullHash []byte
	id       ident.ID
}

// IsSigned - whether the transaction carries a real signature
func (tx *Transaction) IsSigned() bool {
	if signing.SignatureSize != len(tx.Signature) {
		return false
	}
	for _, b := range tx.Signature {
		if 0 != b {
			return true
		}
	}
	return false
}

// FullHash - the 32 byte transaction hash, nil while unsigned
func (tx *Transaction) FullHash() []byte {
	if nil == tx.fullHash {
		return nil
	}
	h := make([]byte, len(tx.fullHash))
	copy(h, tx.fullHash)
	return h
}

// ID - the transaction identifier, zero while unsigned
func (tx *Transaction) ID() ident.ID {
	return tx.id
}

// SenderID - the account identifier of the sender public key
func (tx *Transaction) SenderID() ident.ID {
	id, err := signing.PublicKeyID(tx.SenderPublicKey, signing.SHA3{})
	if nil != err {
		return 0
	}
	return id
}

// Validate - structural checks on a locally assembled transaction
//
// run before packing anything that did not come from NewTransaction
// or Unpack
func (tx *Transaction) Validate() error {
	if tx.Deadline < 1 || tx.Deadline > chain.MaximumDeadline {
		return fault.ErrInvalidDeadline
	}
	if signing.PublicKeySize != len(tx.SenderPublicKey) {
		return fault.ErrInvalidPublicKey
	}
	if 0 != len(tx.RefHash) && ReferencedHashLength != len(tx.RefHash) {
		return fault.ErrHashTooShort
	}
	if 0 != len(tx.Signature) && signing.SignatureSize != len(tx.Signature) {
		return fault.ErrInvalidSignatureLength
	}

	if nil == tx.Attachment {
		if attachment.HasPayload(tx.Type, tx.Subtype) || !attachment.Registered(tx.Type, tx.Subtype) {
			return fault.ErrUnknownTransactionType
		}
	} else {
		txType, subtype := tx.Attachment.TransactionType()
		if txType != tx.Type || subtype != tx.Subtype {
			return fault.ErrUnknownTransactionType
		}
		if err := attachment.CheckVersion(tx.Attachment, tx.Version >= 1); nil != err {
			return err
		}
		if err := tx.Attachment.Validate(); nil != err {
			return err
		}
	}

	if tx.Version >= 1 {
		ec := ECBlock{ID: tx.ECBlockID, Height: tx.ECBlockHeight}
		if err := ec.Validate(); nil != err {
			return err
		}
	}
	return nil
}
