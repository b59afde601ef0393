// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, recipient, err := checkRecipient(c, "receiver", m)
	if nil != err {
		return err
	}

	amount, err := checkAmount(c, "amount", true)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	return sendTransaction(c, m, recipient, amount, nil)
}
