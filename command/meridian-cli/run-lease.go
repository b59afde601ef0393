// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/attachment"
)

func runLease(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, recipient, err := checkRecipient(c, "receiver", m)
	if nil != err {
		return err
	}

	period := c.Uint("period")
	if period > 0xffff {
		return fmt.Errorf("invalid period: %d", period)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "lessee: %s\n", to)
		fmt.Fprintf(m.e, "period: %d\n", period)
	}

	a := &attachment.BalanceLeasing{
		Version: 1,
		Period:  uint16(period),
	}
	return sendTransaction(c, m, recipient, 0, a)
}
