// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strconv"
	"strings"

	"github.com/meridianchain/go-meridian/fault"
)

// ReedSolomonCodec - the standard address codec
//
// a 64 bit identifier is expressed as thirteen data symbols plus four
// check symbols over GF(32), grouped 4-4-4-5 with dashes.  The code
// has minimum distance five so any corruption of up to four symbols
// is always detected.
type ReedSolomonCodec struct{}

// symbol alphabet: digits and upper case letters that survive
// transcription (no 0/O, no 1/I/L)
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	base32Length   = 13 // data symbols
	codewordLength = 17 // data + check symbols
	base10Length   = 20 // digits in 2^64-1
)

// GF(32) antilog and log tables for the field generated by
// x^5 + x^2 + 1
var gexp = [32]int{
	1, 2, 4, 8, 16, 5, 10, 20, 13, 26, 17, 7, 14, 28, 29, 31,
	27, 19, 3, 6, 12, 24, 21, 15, 30, 25, 23, 11, 22, 9, 18, 1,
}

var glog = [32]int{
	0, 0, 1, 18, 2, 5, 19, 11, 3, 29, 6, 27, 20, 8, 12, 23,
	4, 10, 30, 17, 7, 22, 28, 26, 21, 25, 9, 16, 13, 14, 24, 15,
}

// transmission order of the codeword symbols
var codewordMap = [codewordLength]int{
	3, 2, 1, 0, 7, 6, 5, 4, 13, 14, 15, 16, 12, 8, 9, 10, 11,
}

func gmult(a int, b int) int {
	if 0 == a || 0 == b {
		return 0
	}
	return gexp[(glog[a]+glog[b])%31]
}

// Encode - convert an identifier to its checksummed symbol groups
func (ReedSolomonCodec) Encode(id uint64) string {
	plainString := strconv.FormatUint(id, 10)
	length := len(plainString)

	var plain10 [base10Length]int
	for i := 0; i < length; i += 1 {
		plain10[i] = int(plainString[i] - '0')
	}

	// repeated long division by 32, least significant symbol first
	var codeword [codewordLength]int
	n := 0
	for {
		newLength := 0
		digit32 := 0
		for i := 0; i < length; i += 1 {
			digit32 = digit32*10 + plain10[i]
			if digit32 >= 32 {
				plain10[newLength] = digit32 >> 5
				digit32 &= 31
				newLength += 1
			} else if newLength > 0 {
				plain10[newLength] = 0
				newLength += 1
			}
		}
		length = newLength
		codeword[n] = digit32
		n += 1
		if 0 == length {
			break
		}
	}

	// four check symbols from the generator polynomial
	// (x-g)(x-g²)(x-g³)(x-g⁴)
	p := [4]int{}
	for i := base32Length - 1; i >= 0; i -= 1 {
		fb := codeword[i] ^ p[3]
		p[3] = p[2] ^ gmult(30, fb)
		p[2] = p[1] ^ gmult(6, fb)
		p[1] = p[0] ^ gmult(9, fb)
		p[0] = gmult(17, fb)
	}
	copy(codeword[base32Length:], p[:])

	s := strings.Builder{}
	for i := 0; i < codewordLength; i += 1 {
		s.WriteByte(alphabet[codeword[codewordMap[i]]])
		if 3 == i&3 && i < base32Length {
			s.WriteByte('-')
		}
	}
	return s.String()
}

// Decode - convert checksummed symbol groups back to an identifier
//
// dashes and any characters outside the alphabet are skipped, so
// lightly reformatted addresses still decode; a wrong symbol, a
// missing symbol or an extra symbol is an error
func (ReedSolomonCodec) Decode(s string) (uint64, error) {
	var codeword [codewordLength]int
	n := 0
	for i := 0; i < len(s); i += 1 {
		position := strings.IndexByte(alphabet, s[i])
		if position < 0 {
			continue
		}
		if n >= codewordLength {
			return 0, fault.ErrChecksumMismatch
		}
		codeword[codewordMap[n]] = position
		n += 1
	}
	if codewordLength != n || !isCodewordValid(codeword) {
		return 0, fault.ErrChecksumMismatch
	}

	// base 32 → base 10, most significant symbol first
	length := base32Length
	var symbols [base32Length]int
	for i := 0; i < length; i += 1 {
		symbols[i] = codeword[length-i-1]
	}

	plain := make([]byte, 0, base10Length+1)
	for {
		newLength := 0
		digit10 := 0
		for i := 0; i < length; i += 1 {
			digit10 = digit10*32 + symbols[i]
			if digit10 >= 10 {
				symbols[newLength] = digit10 / 10
				digit10 %= 10
				newLength += 1
			} else if newLength > 0 {
				symbols[newLength] = 0
				newLength += 1
			}
		}
		length = newLength
		plain = append(plain, byte(digit10)+'0')
		if 0 == length {
			break
		}
	}

	// digits were produced least significant first
	for i, j := 0, len(plain)-1; i < j; i, j = i+1, j-1 {
		plain[i], plain[j] = plain[j], plain[i]
	}

	// thirteen base 32 symbols span 65 bits, so a valid codeword can
	// still encode a value outside the identifier range
	value, err := strconv.ParseUint(string(plain), 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidIdentifier
	}
	return value, nil
}

// verify that the codeword evaluates to zero at the four roots of the
// generator polynomial
func isCodewordValid(codeword [codewordLength]int) bool {
	sum := 0
	for i := 1; i < 5; i += 1 {
		t := 0
		for j := 0; j < 31; j += 1 {
			if j > 12 && j < 27 {
				continue
			}
			position := j
			if j > 26 {
				position -= 14
			}
			t ^= gmult(codeword[position], gexp[(i*j)%31])
		}
		sum |= t
	}
	return 0 == sum
}
