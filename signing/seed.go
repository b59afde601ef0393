// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/meridianchain/go-meridian/fault"
)

// seed layout: magic(3) net(1) core(32) checksum(4)
var seedMagic = []byte{0x4d, 0x52, 0x44} // "MRD"

const (
	seedCoreLength     = 32
	seedChecksumLength = 4
)

// NewSeed - create a new random seed in its base58 text form
func NewSeed(test bool) (string, error) {
	core := make([]byte, seedCoreLength)
	n, err := rand.Read(core)
	if nil != err {
		return "", err
	}
	if seedCoreLength != n {
		panic("too few random bytes")
	}

	net := byte(0x00)
	if test {
		net = 0x01
	}

	packed := append([]byte{}, seedMagic...)
	packed = append(packed, net)
	packed = append(packed, core...)
	checksum := sha3.Sum256(packed)
	packed = append(packed, checksum[:seedChecksumLength]...)

	return base58.Encode(packed), nil
}

// DecodeSeed - recover the 32 byte seed core from its text form
//
// returns the seed bytes and whether the seed is for a test network
func DecodeSeed(seed string) ([]byte, bool, error) {
	packed, err := base58.Decode(seed)
	if nil != err {
		return nil, false, fault.ErrInvalidSeed
	}
	if len(seedMagic)+1+seedCoreLength+seedChecksumLength != len(packed) {
		return nil, false, fault.ErrInvalidSeed
	}
	if !bytes.Equal(seedMagic, packed[:len(seedMagic)]) {
		return nil, false, fault.ErrInvalidSeed
	}

	net := packed[len(seedMagic)]
	if net > 0x01 {
		return nil, false, fault.ErrInvalidSeed
	}

	checksumStart := len(packed) - seedChecksumLength
	checksum := sha3.Sum256(packed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], packed[checksumStart:]) {
		return nil, false, fault.ErrChecksumMismatch
	}

	core := make([]byte, seedCoreLength)
	copy(core, packed[len(seedMagic)+1:checksumStart])
	return core, 0x01 == net, nil
}
