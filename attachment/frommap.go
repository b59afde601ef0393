// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attachment

import (
	"encoding/hex"

	"github.com/mitchellh/mapstructure"

	"github.com/meridianchain/go-meridian/fault"
)

// FromMap - build an attachment from a generic field map
//
// this is the decode path for the JSON layer: the node (and the local
// request builder) hand over plain key/value maps; numbers may arrive
// as JSON numbers or as decimal strings, both are accepted.  The
// result is validated before it is returned, so a FromMap attachment
// can be packed without further checks
//
// returns nil for a tag that carries no payload
func FromMap(txType uint8, subtype uint8, fields map[string]interface{}) (Attachment, error) {
	if !Registered(txType, subtype) {
		return nil, fault.ErrUnknownTransactionType
	}
	if !HasPayload(txType, subtype) {
		return nil, nil
	}

	var a Attachment
	var err error

	switch {
	case TypeMessaging == txType && SubtypeArbitraryMessage == subtype:
		a, err = messageFromMap(fields)

	case TypeMessaging == txType && SubtypeAliasAssignment == subtype:
		a, err = decodeFields(fields, &AliasAssignment{}, "alias")

	case TypeMessaging == txType && SubtypePollCreation == subtype:
		a, err = decodeFields(fields, &PollCreation{}, "name", "options")

	case TypeMessaging == txType && SubtypeVoteCasting == subtype:
		a, err = decodeFields(fields, &VoteCasting{}, "poll", "vote")

	case TypeMessaging == txType && SubtypeAccountInfo == subtype:
		a, err = decodeFields(fields, &AccountInfo{})

	case TypeMessaging == txType && SubtypeAliasSell == subtype:
		a, err = decodeFields(fields, &AliasSell{}, "alias")

	case TypeMessaging == txType && SubtypeAliasBuy == subtype:
		a, err = decodeFields(fields, &AliasBuy{}, "alias")

	case TypeAccountControl == txType && SubtypeBalanceLeasing == subtype:
		a, err = decodeFields(fields, &BalanceLeasing{}, "period")

	case TypeMonetarySystem == txType && SubtypeCurrencyMinting == subtype:
		a, err = decodeFields(fields, &CurrencyMinting{}, "currency", "units")
	}

	if nil != err {
		return nil, err
	}
	if err := a.Validate(); nil != err {
		return nil, err
	}
	return a, nil
}

// decode a field map into an attachment struct, requiring some keys
//
// field names are the json tags of the variant structs, so the wire
// JSON and the map form stay in step
func decodeFields(fields map[string]interface{}, target Attachment, required ...string) (Attachment, error) {
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return nil, fault.ErrMissingAttachmentField
		}
	}

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if nil != err {
		return nil, fault.ErrMalformedAttachment
	}
	if err := d.Decode(fields); nil != err {
		return nil, fault.ErrMalformedAttachment
	}
	return target, nil
}

// the message field is text or hex depending on messageIsText, so it
// cannot go through the generic decoder
func messageFromMap(fields map[string]interface{}) (Attachment, error) {
	raw, ok := fields["message"]
	if !ok {
		return nil, fault.ErrMissingAttachmentField
	}
	text, ok := raw.(string)
	if !ok {
		return nil, fault.ErrMalformedAttachment
	}

	isText := false
	if flag, ok := fields["messageIsText"]; ok {
		b, ok := flag.(bool)
		if !ok {
			return nil, fault.ErrMalformedAttachment
		}
		isText = b
	}

	message := &ArbitraryMessage{IsText: isText}
	if isText {
		message.Message = []byte(text)
	} else {
		decoded, err := hex.DecodeString(text)
		if nil != err {
			return nil, fault.ErrMalformedAttachment
		}
		message.Message = decoded
	}
	return message, nil
}
