// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeapi

import (
	"encoding/hex"
	"strconv"

	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/transactionrecord"
)

const ecBlockCacheKey = "ecBlock"

// GetECBlock - fetch the current economic clustering binding
//
// the reply is cached briefly so a batch of transactions reuses one
// binding instead of asking the node per transaction
func (c *Client) GetECBlock() (*transactionrecord.ECBlock, error) {
	if cached, ok := c.ecCache.Get(ecBlockCacheKey); ok {
		return cached.(*transactionrecord.ECBlock), nil
	}

	reply := &ECBlockReply{}
	if err := c.call("getECBlock", nil, reply); nil != err {
		return nil, err
	}

	ecBlock := &transactionrecord.ECBlock{
		ID:        reply.ECBlockID,
		Height:    reply.ECBlockHeight,
		Timestamp: reply.Timestamp,
	}
	if err := ecBlock.Validate(); nil != err {
		return nil, err
	}

	c.ecCache.SetDefault(ecBlockCacheKey, ecBlock)
	return ecBlock, nil
}

// BroadcastTransaction - submit a signed transaction
func (c *Client) BroadcastTransaction(packed transactionrecord.Packed) (*BroadcastReply, error) {
	tx, err := transactionrecord.Unpack(packed)
	if nil != err {
		return nil, err
	}
	if !tx.IsSigned() {
		return nil, fault.ErrTransactionIsNotSigned
	}

	reply := &BroadcastReply{}
	params := map[string]string{
		"transactionBytes": hex.EncodeToString(packed),
	}
	if err := c.call("broadcastTransaction", params, reply); nil != err {
		return nil, err
	}

	// the node must agree with the locally derived identifier
	if reply.TransactionID != tx.ID() {
		c.log.Errorf("broadcast id: %s  local id: %s", reply.TransactionID, tx.ID())
		return nil, fault.ErrNodeReplyIsNotValid
	}
	return reply, nil
}

// GetAccount - fetch account state
func (c *Client) GetAccount(account ident.ID) (*AccountReply, error) {
	reply := &AccountReply{}
	params := map[string]string{
		"account": account.String(),
	}
	if err := c.call("getAccount", params, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetTransaction - fetch one transaction by identifier
func (c *Client) GetTransaction(txID ident.ID) (*TransactionReply, error) {
	reply := &TransactionReply{}
	params := map[string]string{
		"transaction": txID.String(),
	}
	if err := c.call("getTransaction", params, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetBlock - fetch one block by height
func (c *Client) GetBlock(height int32) (*BlockReply, error) {
	reply := &BlockReply{}
	params := map[string]string{
		"height": strconv.FormatInt(int64(height), 10),
	}
	if err := c.call("getBlock", params, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetBlockchainStatus - fetch the node's view of the chain
func (c *Client) GetBlockchainStatus() (*BlockchainStatusReply, error) {
	reply := &BlockchainStatusReply{}
	if err := c.call("getBlockchainStatus", nil, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
