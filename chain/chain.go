// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - fixed parameters of the Meridian network
package chain

import (
	"time"
)

// names of all chains
const (
	Meridian = "meridian"
	Testing  = "testing"
	Local    = "local"
)

// network-wide constants
const (
	// AddressPrefix - leading tag on human-readable account strings
	AddressPrefix = "MRD"

	// GenesisID - account identifier of the genesis account, packed
	// in place of an absent recipient
	GenesisID uint64 = 1849039292948919705

	// MaximumDeadline - longest permitted transaction deadline in minutes
	MaximumDeadline = 1440
)

// epochUnix - the Meridian epoch: 2016-01-01 00:00:00 UTC
//
// all on-chain timestamps count seconds from this moment, not from
// the Unix epoch
const epochUnix int64 = 1451606400

// Epoch - the network epoch as a time.Time
var Epoch = time.Unix(epochUnix, 0).UTC()

// EpochSeconds - convert a wall clock time to epoch seconds
func EpochSeconds(t time.Time) int32 {
	return int32(t.Unix() - epochUnix)
}

// EpochNow - the current time in epoch seconds
func EpochNow() int32 {
	return EpochSeconds(time.Now())
}

// EpochTime - convert epoch seconds back to a wall clock time
func EpochTime(seconds int32) time.Time {
	return time.Unix(epochUnix+int64(seconds), 0).UTC()
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Meridian, Testing, Local:
		return true
	default:
		return false
	}
}
