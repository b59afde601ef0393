// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/ident"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newNodeClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	// with a transaction identifier look up that one transaction,
	// otherwise report the chain status
	if arg := c.String("txid"); "" != arg {
		txID, err := ident.Parse(arg)
		if nil != err || 0 == txID {
			return fmt.Errorf("invalid txid: %q", arg)
		}
		reply, err := client.GetTransaction(txID)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	}

	status, err := client.GetBlockchainStatus()
	if nil != err {
		return err
	}

	printJson(m.w, status)
	return nil
}
