// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/ident"
)

func runAlias(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing alias name")
	}

	// sell and buy need a counterparty; assignment never does
	var recipient ident.ID
	if "" != c.String("receiver") {
		_, resolved, err := checkRecipient(c, "receiver", m)
		if nil != err {
			return err
		}
		recipient = resolved
	}

	switch {
	case c.Bool("buy"):
		amount, err := checkAmount(c, "amount", true)
		if nil != err {
			return err
		}
		a := &attachment.AliasBuy{
			Version:   1,
			AliasName: name,
		}
		return sendTransaction(c, m, recipient, amount, a)

	case "" != c.String("sell"):
		price, err := checkAmount(c, "sell", true)
		if nil != err {
			return err
		}
		a := &attachment.AliasSell{
			Version:   1,
			AliasName: name,
			Price:     price,
		}
		return sendTransaction(c, m, recipient, 0, a)

	default:
		a := &attachment.AliasAssignment{
			Version:   1,
			AliasName: name,
			AliasURI:  c.String("uri"),
		}
		return sendTransaction(c, m, 0, 0, a)
	}
}
