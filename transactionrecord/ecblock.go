// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
)

// ECBlock - an economic clustering binding
//
// a (block identifier, height) pair anchoring a transaction to one
// branch of the chain, so that it cannot be replayed on a fork.  The
// node supplies a fresh binding for every outgoing transaction; the
// timestamp records when the binding was computed and is not part of
// the wire format
type ECBlock struct {
	ID        ident.ID `json:"ecBlockId"`
	Height    int32    `json:"ecBlockHeight"`
	Timestamp int32    `json:"timestamp,omitempty"`
}

// Validate - height is non-negative; a zero identifier is only
// permitted at height zero, the "unbound" state of format version 0
// transactions
func (e ECBlock) Validate() error {
	if e.Height < 0 {
		return fault.ErrInvalidEcBlock
	}
	if 0 == e.ID && 0 != e.Height {
		return fault.ErrInvalidEcBlock
	}
	return nil
}
