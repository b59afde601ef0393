// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"golang.org/x/crypto/sha3"
)

// SHA3 - the standard Hasher, SHA3-256
type SHA3 struct{}

// Digest - SHA3-256 over the concatenated chunks
func (SHA3) Digest(chunks ...[]byte) []byte {
	h := sha3.New256()
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	return h.Sum(nil)
}
