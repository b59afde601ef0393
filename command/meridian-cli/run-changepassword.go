// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkIdentity(c, m)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptCheckPasswordReader()
		if nil != err {
			return err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return err
	}

	newPassword, err := promptPasswordReader()
	if nil != err {
		return err
	}

	// re-encrypt under the new password, keeping the account unchanged
	old := m.config.Identities[name]
	delete(m.config.Identities, name)
	err = m.config.AddIdentity(name, private.Description, private.Seed, newPassword)
	if nil != err {
		m.config.Identities[name] = old
		return err
	}

	m.save = true
	return nil
}
