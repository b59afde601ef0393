// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attachment

import (
	"encoding/hex"
	"encoding/json"
)

// MarshalJSON - text messages stay readable, binary ones become hex
//
// keeps the JSON form identical to the field map FromMap consumes
func (message ArbitraryMessage) MarshalJSON() ([]byte, error) {
	m := struct {
		Message string `json:"message"`
		IsText  bool   `json:"messageIsText"`
	}{
		IsText: message.IsText,
	}
	if message.IsText {
		m.Message = string(message.Message)
	} else {
		m.Message = hex.EncodeToString(message.Message)
	}
	return json.Marshal(m)
}
