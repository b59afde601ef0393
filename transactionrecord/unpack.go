// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/signing"
	"github.com/meridianchain/go-meridian/util"
)

// Unpack - decode a packed transaction
//
// the whole buffer must be consumed: a registered tag followed by
// extra bytes is rejected, so a packed record cannot smuggle data the
// signature does not cover.  When the record carries a real signature
// the derived hash and identifier are recomputed, so the returned
// transaction is immediately usable for lookups
func Unpack(buffer Packed) (*Transaction, error) {
	if len(buffer) < HeaderV0Length {
		return nil, fault.ErrTransactionTooShort
	}

	c := util.NewCursor(buffer)

	tx := &Transaction{}
	tx.Type = c.Uint8()

	b := c.Uint8()
	tx.Subtype = b & 0x0f
	tx.Version = b >> 4

	tx.Timestamp = int32(c.Uint32())
	tx.Deadline = c.Uint16()
	tx.SenderPublicKey = c.Bytes(signing.PublicKeySize)
	tx.RecipientID = ident.ID(c.Uint64())
	tx.Amount = int64(c.Uint64())
	tx.Fee = int64(c.Uint64())
	tx.RefHash = c.Bytes(ReferencedHashLength)
	tx.Signature = c.Bytes(signing.SignatureSize)

	if tx.Version >= 1 {
		tx.Flags = c.Uint32()
		tx.ECBlockHeight = int32(c.Uint32())
		tx.ECBlockID = ident.ID(c.Uint64())
	}
	if nil != c.Err() {
		return nil, c.Err()
	}

	if allZero(tx.RefHash) {
		tx.RefHash = nil
	}

	a, err := attachment.Unpack(tx.Type, tx.Subtype, c, tx.Version >= 1)
	if nil != err {
		return nil, err
	}
	if nil != c.Err() {
		return nil, c.Err()
	}
	if 0 != c.Remaining() {
		return nil, fault.ErrTrailingData
	}
	tx.Attachment = a

	if allZero(tx.Signature) {
		tx.Signature = nil
	} else {
		hasher := signing.SHA3{}
		tx.fullHash = hasher.Digest(tx.UnsignedBytes(), hasher.Digest(tx.Signature))
		id, err := ident.FromHash(tx.fullHash)
		if nil != err {
			return nil, err
		}
		tx.id = id
	}

	return tx, nil
}

func allZero(buffer []byte) bool {
	for _, b := range buffer {
		if 0 != b {
			return false
		}
	}
	return true
}
