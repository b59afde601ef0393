// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return fmt.Errorf("missing identity name")
	}

	description := c.String("description")
	if "" == description {
		return fmt.Errorf("missing description")
	}

	// a receive-only identity stores just the account
	if acc := c.String("account"); "" != acc {
		err := m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}
		m.save = true
		return nil
	}

	seed, err := checkSeed(c.String("seed"), m.testnet)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPasswordReader()
		if nil != err {
			return err
		}
	}

	err = m.config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}

	m.config.DefaultIdentity = name
	m.save = true

	return nil
}
