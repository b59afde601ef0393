// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/meridianchain/go-meridian/fault"
)

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// promptPasswordReader - choose a new password, entered twice
func promptPasswordReader() (string, error) {
	password, err := readPassword("set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < 8 {
		return "", fault.ErrPasswordTooShort
	}

	verify, err := readPassword("verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", fault.ErrPasswordMismatch
	}

	return password, nil
}

// promptCheckPasswordReader - ask for an existing password
func promptCheckPasswordReader() (string, error) {
	return readPassword("password: ")
}
