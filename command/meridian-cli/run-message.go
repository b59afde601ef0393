// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/ident"
)

func runMessage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// message without a receiver goes to the genesis account
	var recipient ident.ID
	if "" != c.String("receiver") {
		_, resolved, err := checkRecipient(c, "receiver", m)
		if nil != err {
			return err
		}
		recipient = resolved
	}

	text := c.String("message")
	if "" == text {
		return fmt.Errorf("missing message")
	}

	a := &attachment.ArbitraryMessage{}
	if c.Bool("hex") {
		data, err := hex.DecodeString(text)
		if nil != err {
			return err
		}
		a.Message = data
	} else {
		a.Message = []byte(text)
		a.IsText = true
	}

	return sendTransaction(c, m, recipient, 0, a)
}
