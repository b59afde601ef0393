// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attachment

import (
	"unicode/utf8"

	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/util"
)

// the leading version byte is on the wire only for attachment
// version ≥ 1; its absence is part of the version 0 layout
func versionPrefix(version uint8) []byte {
	if version >= 1 {
		return []byte{version}
	}
	return nil
}

// CheckVersion - confirm an attachment version agrees with the layout
// the enclosing transaction's format version selects
//
// a versioned variant writes its leading byte only for version ≥ 1
// while the decoder consumes it whenever the transaction format is
// ≥ 1, so a disagreement packs to bytes that cannot be decoded again
func CheckVersion(a Attachment, versioned bool) error {
	var version uint8
	switch v := a.(type) {
	case *AliasAssignment:
		version = v.Version
	case *AliasBuy:
		version = v.Version
	case *AliasSell:
		version = v.Version
	case *BalanceLeasing:
		version = v.Version
	case *CurrencyMinting:
		version = v.Version
	default:
		return nil
	}
	if versioned != (version >= 1) {
		return fault.ErrWrongAttachmentVersion
	}
	return nil
}

func isAlphanumeric(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// shared validation for the alias name carried by all alias variants
func validateAliasName(name string) error {
	if "" == name {
		return fault.ErrAliasNameIsEmpty
	}
	if utf8.RuneCountInString(name) > maxAliasNameLength {
		return fault.ErrNameTooLong
	}
	if !isAlphanumeric(name) {
		return fault.ErrNameIsNotAlphanumeric
	}
	return nil
}

// pack AccountInfo
//
// u8 nameLen, name, u16 descLen, desc
func (info *AccountInfo) Encode() []byte {
	buffer := []byte{byte(len(info.Name))}
	buffer = append(buffer, info.Name...)
	buffer = util.AppendUint16(buffer, uint16(len(info.Description)))
	return append(buffer, info.Description...)
}

func (info *AccountInfo) Validate() error {
	// the name length prefix is a single byte, so the byte count is
	// limited as well as the rune count
	if utf8.RuneCountInString(info.Name) > maxAccountNameLength || len(info.Name) > 255 {
		return fault.ErrNameTooLong
	}
	if utf8.RuneCountInString(info.Description) > maxDescriptionLength {
		return fault.ErrDescriptionTooLong
	}
	return nil
}

// pack AliasAssignment
//
// [u8 version,] u8 nameLen, name, u16 uriLen, uri
func (alias *AliasAssignment) Encode() []byte {
	buffer := versionPrefix(alias.Version)
	buffer = append(buffer, byte(len(alias.AliasName)))
	buffer = append(buffer, alias.AliasName...)
	buffer = util.AppendUint16(buffer, uint16(len(alias.AliasURI)))
	return append(buffer, alias.AliasURI...)
}

func (alias *AliasAssignment) Validate() error {
	if err := validateAliasName(alias.AliasName); nil != err {
		return err
	}
	if utf8.RuneCountInString(alias.AliasURI) > maxAliasURILength {
		return fault.ErrUriTooLong
	}
	return nil
}

// pack AliasBuy
//
// [u8 version,] u8 nameLen, name
func (buy *AliasBuy) Encode() []byte {
	buffer := versionPrefix(buy.Version)
	buffer = append(buffer, byte(len(buy.AliasName)))
	return append(buffer, buy.AliasName...)
}

func (buy *AliasBuy) Validate() error {
	return validateAliasName(buy.AliasName)
}

// pack AliasSell
//
// [u8 version,] u8 nameLen, name, i64 price
func (sell *AliasSell) Encode() []byte {
	buffer := versionPrefix(sell.Version)
	buffer = append(buffer, byte(len(sell.AliasName)))
	buffer = append(buffer, sell.AliasName...)
	return util.AppendUint64(buffer, uint64(sell.Price))
}

func (sell *AliasSell) Validate() error {
	if err := validateAliasName(sell.AliasName); nil != err {
		return err
	}
	if sell.Price < 0 {
		return fault.ErrInvalidPrice
	}
	return nil
}

// pack ArbitraryMessage
//
// u32 (length | text flag), message bytes
func (message *ArbitraryMessage) Encode() []byte {
	word := uint32(len(message.Message))
	if message.IsText {
		word |= messageIsTextFlag
	}
	buffer := util.AppendUint32(nil, word)
	return append(buffer, message.Message...)
}

func (message *ArbitraryMessage) Validate() error {
	if len(message.Message) > maxMessageLength {
		return fault.ErrMessageTooLong
	}
	return nil
}

// pack BalanceLeasing
//
// [u8 version,] u16 period
func (lease *BalanceLeasing) Encode() []byte {
	return util.AppendUint16(versionPrefix(lease.Version), lease.Period)
}

func (lease *BalanceLeasing) Validate() error {
	if lease.Period < minLeasingPeriod {
		return fault.ErrInvalidLeasingPeriod
	}
	return nil
}

// pack CurrencyMinting
//
// [u8 version,] i64 nonce, i64 currencyId, i64 units, i64 counter
func (mint *CurrencyMinting) Encode() []byte {
	buffer := versionPrefix(mint.Version)
	buffer = util.AppendUint64(buffer, uint64(mint.Nonce))
	buffer = util.AppendUint64(buffer, uint64(mint.CurrencyID))
	buffer = util.AppendUint64(buffer, uint64(mint.Units))
	return util.AppendUint64(buffer, uint64(mint.Counter))
}

func (mint *CurrencyMinting) Validate() error {
	if 0 == mint.CurrencyID {
		return fault.ErrMissingAttachmentField
	}
	if mint.Units <= 0 {
		return fault.ErrInvalidCurrencyUnits
	}
	return nil
}

// pack PollCreation
//
// u16 nameLen, name, u16 descLen, desc, u8 optionCount,
// {u16 optLen, opt} × optionCount, u8 min, u8 max, u8 optionsAreBinary
func (poll *PollCreation) Encode() []byte {
	buffer := util.AppendUint16(nil, uint16(len(poll.PollName)))
	buffer = append(buffer, poll.PollName...)
	buffer = util.AppendUint16(buffer, uint16(len(poll.PollDescription)))
	buffer = append(buffer, poll.PollDescription...)
	buffer = append(buffer, byte(len(poll.PollOptions)))
	for _, option := range poll.PollOptions {
		buffer = util.AppendUint16(buffer, uint16(len(option)))
		buffer = append(buffer, option...)
	}
	buffer = append(buffer, poll.MinNumberOfOptions, poll.MaxNumberOfOptions)
	binary := byte(0)
	if poll.OptionsAreBinary {
		binary = 1
	}
	return append(buffer, binary)
}

func (poll *PollCreation) Validate() error {
	if "" == poll.PollName {
		return fault.ErrMissingAttachmentField
	}
	if utf8.RuneCountInString(poll.PollName) > maxPollNameLength {
		return fault.ErrNameTooLong
	}
	if utf8.RuneCountInString(poll.PollDescription) > maxDescriptionLength {
		return fault.ErrDescriptionTooLong
	}
	if len(poll.PollOptions) > maxPollOptionCount {
		return fault.ErrTooManyPollOptions
	}
	if 0 == len(poll.PollOptions) {
		return fault.ErrInvalidPollOptions
	}
	for _, option := range poll.PollOptions {
		if "" == option {
			return fault.ErrInvalidPollOptions
		}
		if utf8.RuneCountInString(option) > maxPollOptionLength {
			return fault.ErrPollOptionTooLong
		}
	}
	count := uint8(len(poll.PollOptions))
	if poll.MinNumberOfOptions < 1 ||
		poll.MinNumberOfOptions > poll.MaxNumberOfOptions ||
		poll.MaxNumberOfOptions > count {
		return fault.ErrInvalidPollOptions
	}
	return nil
}

// pack VoteCasting
//
// i64 pollId, u8 voteCount, one signed byte per vote
func (vote *VoteCasting) Encode() []byte {
	buffer := util.AppendUint64(nil, uint64(vote.PollID))
	buffer = append(buffer, byte(len(vote.Votes)))
	for _, v := range vote.Votes {
		buffer = append(buffer, byte(v))
	}
	return buffer
}

func (vote *VoteCasting) Validate() error {
	if 0 == vote.PollID {
		return fault.ErrMissingAttachmentField
	}
	if 0 == len(vote.Votes) || len(vote.Votes) > maxVoteCount {
		return fault.ErrInvalidVotes
	}
	return nil
}
