// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"

	"github.com/meridianchain/go-meridian/account"
)

// MarshalJSON - the node-style JSON form
//
// byte fields are emitted as hex, identifiers as decimal strings and
// accounts additionally in their Reed-Solomon form
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction

	item := struct {
		*plain
		SenderPublicKey string `json:"senderPublicKey"`
		Sender          string `json:"sender"`
		SenderRS        string `json:"senderRS"`
		RecipientRS     string `json:"recipientRS"`
		RefHash         string `json:"referencedTransactionFullHash,omitempty"`
		Signature       string `json:"signature,omitempty"`
		FullHash        string `json:"fullHash,omitempty"`
		TransactionID   string `json:"transaction,omitempty"`
	}{
		plain:           (*plain)(tx),
		SenderPublicKey: hex.EncodeToString(tx.SenderPublicKey),
		Sender:          tx.SenderID().String(),
		SenderRS:        account.String(tx.SenderID()),
		RecipientRS:     account.String(tx.RecipientID),
		RefHash:         hex.EncodeToString(tx.RefHash),
		Signature:       hex.EncodeToString(tx.Signature),
		FullHash:        hex.EncodeToString(tx.fullHash),
	}
	if tx.IsSigned() {
		item.TransactionID = tx.id.String()
	}
	return json.Marshal(item)
}
