// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/chain"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/signing"
)

// Parameters - the caller-supplied inputs for a new transaction
//
// Timestamp zero means "now"; a nil EcBlock produces a format
// version 0 record unless Version says otherwise
type Parameters struct {
	Version     uint8
	Type        uint8
	Subtype     uint8
	Timestamp   int32
	Deadline    uint16
	RecipientID ident.ID
	Amount      int64
	Fee         int64
	RefHash     []byte
	Attachment  attachment.Attachment
	EcBlock     *ECBlock
}

// NewTransaction - assemble, validate and sign a transaction
//
// every structural check runs before the signer is consulted, so a
// bad deadline or attachment never reaches the credential
func NewTransaction(p Parameters, signer signing.Signer) (*Transaction, error) {
	tx := &Transaction{
		Version:         p.Version,
		Type:            p.Type,
		Subtype:         p.Subtype,
		Timestamp:       p.Timestamp,
		Deadline:        p.Deadline,
		SenderPublicKey: signer.PublicKey(),
		RecipientID:     p.RecipientID,
		Amount:          p.Amount,
		Fee:             p.Fee,
		RefHash:         p.RefHash,
		Attachment:      p.Attachment,
	}
	if 0 == tx.Timestamp {
		tx.Timestamp = chain.EpochNow()
	}
	if nil != p.Attachment {
		txType, subtype := p.Attachment.TransactionType()
		tx.Type = txType
		tx.Subtype = subtype
		tx.Flags = p.Attachment.Flags()
	}
	if nil != p.EcBlock {
		if tx.Version < 1 {
			tx.Version = 1
		}
		tx.ECBlockHeight = p.EcBlock.Height
		tx.ECBlockID = p.EcBlock.ID
	}

	if err := tx.Validate(); nil != err {
		return nil, err
	}
	return tx.Sign(signer, signing.SHA3{})
}

// Sign - produce the signed form of a transaction
//
// the receiver is left untouched; the returned copy carries the
// signature, the full hash and the identifier.  The hash is the
// double construction: hash(unsigned bytes ‖ hash(signature)), and
// the outer digest is always over the unsigned byte form
func (tx *Transaction) Sign(signer signing.Signer, hasher signing.Hasher) (*Transaction, error) {
	signed := *tx
	signed.SenderPublicKey = signer.PublicKey()

	unsigned := signed.UnsignedBytes()

	signature, err := signer.Sign(unsigned)
	if nil != err {
		return nil, fault.SigningError{Cause: err}
	}
	if signing.SignatureSize != len(signature) {
		return nil, fault.SigningError{Cause: fault.ErrInvalidSignatureLength}
	}

	signed.Signature = signature
	signed.fullHash = hasher.Digest(unsigned, hasher.Digest(signature))

	id, err := ident.FromHash(signed.fullHash)
	if nil != err {
		return nil, err
	}
	signed.id = id
	return &signed, nil
}
