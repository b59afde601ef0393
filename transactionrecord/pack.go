// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/meridianchain/go-meridian/chain"
	"github.com/meridianchain/go-meridian/signing"
	"github.com/meridianchain/go-meridian/util"
)

// Pack - produce the byte form of a transaction
//
// with zeroSignature the signature field is emitted as 64 zero bytes,
// which is the message form covered by the signature and by the outer
// identifier digest.  An unsigned transaction always packs with a
// zeroed signature field.
//
// the header layout is identical for both format versions up to the
// end of the signature field; version 1 appends the flags word and
// the economic clustering binding before the attachment payload
func (tx *Transaction) Pack(zeroSignature bool) Packed {
	size := HeaderV0Length
	if tx.Version >= 1 {
		size = HeaderV1Length
	}
	buffer := make([]byte, 0, size)

	buffer = append(buffer, tx.Type)
	buffer = append(buffer, tx.Subtype|tx.Version<<4)
	buffer = util.AppendUint32(buffer, uint32(tx.Timestamp))
	buffer = util.AppendUint16(buffer, tx.Deadline)
	buffer = append(buffer, tx.SenderPublicKey...)

	// a zero recipient stands for the genesis account on the wire
	recipient := uint64(tx.RecipientID)
	if 0 == recipient {
		recipient = chain.GenesisID
	}
	buffer = util.AppendUint64(buffer, recipient)

	buffer = util.AppendUint64(buffer, uint64(tx.Amount))
	buffer = util.AppendUint64(buffer, uint64(tx.Fee))

	if ReferencedHashLength == len(tx.RefHash) {
		buffer = append(buffer, tx.RefHash...)
	} else {
		buffer = append(buffer, make([]byte, ReferencedHashLength)...)
	}

	if !zeroSignature && signing.SignatureSize == len(tx.Signature) {
		buffer = append(buffer, tx.Signature...)
	} else {
		buffer = append(buffer, make([]byte, signing.SignatureSize)...)
	}

	if tx.Version >= 1 {
		buffer = util.AppendUint32(buffer, tx.Flags)
		buffer = util.AppendUint32(buffer, uint32(tx.ECBlockHeight))
		buffer = util.AppendUint64(buffer, uint64(tx.ECBlockID))
	}

	if nil != tx.Attachment {
		buffer = append(buffer, tx.Attachment.Encode()...)
	}
	return buffer
}

// UnsignedBytes - the signing message: the packed form with a zeroed
// signature field
func (tx *Transaction) UnsignedBytes() Packed {
	return tx.Pack(true)
}
