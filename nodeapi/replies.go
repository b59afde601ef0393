// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeapi

import (
	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/ident"
)

// replies mirror the node's JSON field names; 64 bit identifiers and
// quantities arrive as decimal strings

// ECBlockReply - reply to getECBlock
type ECBlockReply struct {
	ECBlockID     ident.ID `json:"ecBlockId"`
	ECBlockHeight int32    `json:"ecBlockHeight"`
	Timestamp     int32    `json:"timestamp"`
}

// BroadcastReply - reply to broadcastTransaction
type BroadcastReply struct {
	TransactionID ident.ID `json:"transaction"`
	FullHash      string   `json:"fullHash"`
}

// AccountReply - reply to getAccount
type AccountReply struct {
	Account               ident.ID `json:"account"`
	AccountRS             string   `json:"accountRS"`
	PublicKey             string   `json:"publicKey"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	BalanceQNT            int64    `json:"balanceQNT,string"`
	UnconfirmedBalanceQNT int64    `json:"unconfirmedBalanceQNT,string"`
	EffectiveBalance      int64    `json:"effectiveBalanceMRD"`
}

// BlockReply - reply to getBlock
type BlockReply struct {
	Block                ident.ID   `json:"block"`
	Height               int32      `json:"height"`
	Timestamp            int32      `json:"timestamp"`
	PreviousBlock        ident.ID   `json:"previousBlock"`
	GeneratorRS          string     `json:"generatorRS"`
	NumberOfTransactions int        `json:"numberOfTransactions"`
	TotalAmountQNT       int64      `json:"totalAmountQNT,string"`
	TotalFeeQNT          int64      `json:"totalFeeQNT,string"`
	Transactions         []ident.ID `json:"transactions"`
}

// BlockchainStatusReply - reply to getBlockchainStatus
type BlockchainStatusReply struct {
	Application    string   `json:"application"`
	Version        string   `json:"version"`
	Time           int32    `json:"time"`
	LastBlock      ident.ID `json:"lastBlock"`
	NumberOfBlocks int32    `json:"numberOfBlocks"`
	IsScanning     bool     `json:"isScanning"`
}

// TransactionReply - reply to getTransaction
//
// the attachment arrives as a free-form JSON object; use the
// Attachment method to decode it into a typed value
type TransactionReply struct {
	TransactionID ident.ID               `json:"transaction"`
	FullHash      string                 `json:"fullHash"`
	Type          uint8                  `json:"type"`
	Subtype       uint8                  `json:"subtype"`
	Version       uint8                  `json:"version"`
	Timestamp     int32                  `json:"timestamp"`
	Deadline      uint16                 `json:"deadline"`
	Sender        ident.ID               `json:"sender"`
	SenderRS      string                 `json:"senderRS"`
	Recipient     ident.ID               `json:"recipient"`
	RecipientRS   string                 `json:"recipientRS"`
	AmountQNT     int64                  `json:"amountQNT,string"`
	FeeQNT        int64                  `json:"feeQNT,string"`
	Signature     string                 `json:"signature"`
	ECBlockID     ident.ID               `json:"ecBlockId"`
	ECBlockHeight int32                  `json:"ecBlockHeight"`
	Confirmations int32                  `json:"confirmations"`
	Fields        map[string]interface{} `json:"attachment"`
}

// Attachment - decode the free-form attachment object
func (r *TransactionReply) Attachment() (attachment.Attachment, error) {
	return attachment.FromMap(r.Type, r.Subtype, r.Fields)
}
