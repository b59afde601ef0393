// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attachment

import (
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/util"
)

type kind struct {
	txType  uint8
	subtype uint8
}

type decoder func(c *util.Cursor, versioned bool) (Attachment, error)

// the closed dispatch table: (type, subtype) → wire decoder
//
// a nil decoder marks a registered tag that carries no payload;
// the table is never mutated after initialisation
var registry = map[kind]decoder{
	{TypePayment, SubtypePaymentOrdinary}:        nil,
	{TypeMessaging, SubtypeArbitraryMessage}:     unpackArbitraryMessage,
	{TypeMessaging, SubtypeAliasAssignment}:      unpackAliasAssignment,
	{TypeMessaging, SubtypePollCreation}:         unpackPollCreation,
	{TypeMessaging, SubtypeVoteCasting}:          unpackVoteCasting,
	{TypeMessaging, SubtypeAccountInfo}:          unpackAccountInfo,
	{TypeMessaging, SubtypeAliasSell}:            unpackAliasSell,
	{TypeMessaging, SubtypeAliasBuy}:             unpackAliasBuy,
	{TypeAccountControl, SubtypeBalanceLeasing}:  unpackBalanceLeasing,
	{TypeMonetarySystem, SubtypeCurrencyMinting}: unpackCurrencyMinting,
}

// Registered - check that a (type, subtype) tag is known
func Registered(txType uint8, subtype uint8) bool {
	_, ok := registry[kind{txType: txType, subtype: subtype}]
	return ok
}

// HasPayload - check whether a tag carries attachment bytes
func HasPayload(txType uint8, subtype uint8) bool {
	d, ok := registry[kind{txType: txType, subtype: subtype}]
	return ok && nil != d
}

// Unpack - decode the payload bytes for a (type, subtype) tag
//
// versioned selects the version ≥ 1 layout, which the enclosing
// transaction's format version implies; returns nil for a tag that
// carries no payload
func Unpack(txType uint8, subtype uint8, c *util.Cursor, versioned bool) (Attachment, error) {
	d, ok := registry[kind{txType: txType, subtype: subtype}]
	if !ok {
		return nil, fault.ErrUnknownTransactionType
	}
	if nil == d {
		return nil, nil
	}
	return d(c, versioned)
}

func unpackVersion(c *util.Cursor, versioned bool) uint8 {
	if versioned {
		return c.Uint8()
	}
	return 0
}

func unpackAccountInfo(c *util.Cursor, versioned bool) (Attachment, error) {
	info := &AccountInfo{}
	info.Name = string(c.Bytes(int(c.Uint8())))
	info.Description = string(c.Bytes(int(c.Uint16())))
	if nil != c.Err() {
		return nil, c.Err()
	}
	return info, nil
}

func unpackAliasAssignment(c *util.Cursor, versioned bool) (Attachment, error) {
	alias := &AliasAssignment{Version: unpackVersion(c, versioned)}
	alias.AliasName = string(c.Bytes(int(c.Uint8())))
	alias.AliasURI = string(c.Bytes(int(c.Uint16())))
	if nil != c.Err() {
		return nil, c.Err()
	}
	return alias, nil
}

func unpackAliasBuy(c *util.Cursor, versioned bool) (Attachment, error) {
	buy := &AliasBuy{Version: unpackVersion(c, versioned)}
	buy.AliasName = string(c.Bytes(int(c.Uint8())))
	if nil != c.Err() {
		return nil, c.Err()
	}
	return buy, nil
}

func unpackAliasSell(c *util.Cursor, versioned bool) (Attachment, error) {
	sell := &AliasSell{Version: unpackVersion(c, versioned)}
	sell.AliasName = string(c.Bytes(int(c.Uint8())))
	sell.Price = int64(c.Uint64())
	if nil != c.Err() {
		return nil, c.Err()
	}
	return sell, nil
}

func unpackArbitraryMessage(c *util.Cursor, versioned bool) (Attachment, error) {
	word := c.Uint32()
	length := word &^ messageIsTextFlag
	if length > maxMessageLength {
		return nil, fault.ErrMessageTooLong
	}
	message := &ArbitraryMessage{
		IsText:  0 != word&messageIsTextFlag,
		Message: c.Bytes(int(length)),
	}
	if nil != c.Err() {
		return nil, c.Err()
	}
	return message, nil
}

func unpackBalanceLeasing(c *util.Cursor, versioned bool) (Attachment, error) {
	lease := &BalanceLeasing{Version: unpackVersion(c, versioned)}
	lease.Period = c.Uint16()
	if nil != c.Err() {
		return nil, c.Err()
	}
	return lease, nil
}

func unpackCurrencyMinting(c *util.Cursor, versioned bool) (Attachment, error) {
	mint := &CurrencyMinting{Version: unpackVersion(c, versioned)}
	mint.Nonce = int64(c.Uint64())
	mint.CurrencyID = ident.ID(c.Uint64())
	mint.Units = int64(c.Uint64())
	mint.Counter = int64(c.Uint64())
	if nil != c.Err() {
		return nil, c.Err()
	}
	return mint, nil
}

func unpackPollCreation(c *util.Cursor, versioned bool) (Attachment, error) {
	poll := &PollCreation{}
	poll.PollName = string(c.Bytes(int(c.Uint16())))
	poll.PollDescription = string(c.Bytes(int(c.Uint16())))
	optionCount := int(c.Uint8())
	poll.PollOptions = make([]string, 0, optionCount)
	for i := 0; i < optionCount; i += 1 {
		poll.PollOptions = append(poll.PollOptions, string(c.Bytes(int(c.Uint16()))))
	}
	poll.MinNumberOfOptions = c.Uint8()
	poll.MaxNumberOfOptions = c.Uint8()
	poll.OptionsAreBinary = 0 != c.Uint8()
	if nil != c.Err() {
		return nil, c.Err()
	}
	return poll, nil
}

func unpackVoteCasting(c *util.Cursor, versioned bool) (Attachment, error) {
	vote := &VoteCasting{}
	vote.PollID = ident.ID(c.Uint64())
	voteCount := int(c.Uint8())
	vote.Votes = make([]int8, 0, voteCount)
	for i := 0; i < voteCount; i += 1 {
		vote.Votes = append(vote.Votes, int8(c.Uint8()))
	}
	if nil != c.Err() {
		return nil, c.Err()
	}
	return vote, nil
}
