// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - helpers for the little-endian transaction wire format
package util

import (
	"encoding/binary"

	"github.com/meridianchain/go-meridian/fault"
)

// AppendUint16 - append a little-endian 16 bit value to a buffer
func AppendUint16(buffer []byte, value uint16) []byte {
	return binary.LittleEndian.AppendUint16(buffer, value)
}

// AppendUint32 - append a little-endian 32 bit value to a buffer
func AppendUint32(buffer []byte, value uint32) []byte {
	return binary.LittleEndian.AppendUint32(buffer, value)
}

// AppendUint64 - append a little-endian 64 bit value to a buffer
func AppendUint64(buffer []byte, value uint64) []byte {
	return binary.LittleEndian.AppendUint64(buffer, value)
}

// Cursor - sequential reader over a wire format buffer
//
// all reads are little-endian; the first read past the end of the
// buffer latches an error and every later read returns zero values,
// so a decode routine only has to check Err once at the end
type Cursor struct {
	buffer []byte
	offset int
	err    error
}

// NewCursor - wrap a buffer for sequential decoding
func NewCursor(buffer []byte) *Cursor {
	return &Cursor{buffer: buffer}
}

// Err - the latched error, nil if all reads stayed in bounds
func (c *Cursor) Err() error { return c.err }

// Remaining - count of bytes not yet consumed
func (c *Cursor) Remaining() int {
	if c.err != nil {
		return 0
	}
	return len(c.buffer) - c.offset
}

func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if c.offset+n > len(c.buffer) {
		c.err = fault.ErrTransactionTooShort
		return nil
	}
	b := c.buffer[c.offset : c.offset+n]
	c.offset += n
	return b
}

// Uint8 - read one byte
func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Uint16 - read a little-endian 16 bit value
func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32 - read a little-endian 32 bit value
func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 - read a little-endian 64 bit value
func (c *Cursor) Uint64() uint64 {
	b := c.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Bytes - read a fixed-length field as a fresh slice
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	if nil == b {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}
