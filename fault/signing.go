// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// SigningError - a signer collaborator failure
//
// Unlike the constant errors above this one wraps the underlying
// cause so that callers can both detect "signing failed" and inspect
// what the signer reported.
type SigningError struct {
	Cause error
}

func (e SigningError) Error() string {
	if nil == e.Cause {
		return "signing failed"
	}
	return "signing failed: " + e.Cause.Error()
}

// Unwrap - expose the signer failure for errors.Is / errors.As
func (e SigningError) Unwrap() error { return e.Cause }

// IsErrSigning - determine if an error is a wrapped signer failure
func IsErrSigning(e error) bool { _, ok := e.(SigningError); return ok }
