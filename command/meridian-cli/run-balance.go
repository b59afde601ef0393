// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/account"
	"github.com/meridianchain/go-meridian/ident"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner ident.ID
	if "" != c.String("owner") {
		_, resolved, err := checkRecipient(c, "owner", m)
		if nil != err {
			return err
		}
		owner = resolved
	} else {
		name, err := checkIdentity(c, m)
		if nil != err {
			return err
		}
		owner, err = m.config.Account(name)
		if nil != err {
			return err
		}
	}

	client, err := newNodeClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAccount(owner)
	if nil != err {
		return err
	}

	// fill in the human-readable form if the node omitted it
	if "" == reply.AccountRS {
		reply.AccountRS = account.String(owner)
	}

	printJson(m.w, reply)
	return nil
}
