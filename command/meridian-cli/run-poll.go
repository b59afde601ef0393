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

func runPoll(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing poll name")
	}

	minOptions := c.Uint("min")
	maxOptions := c.Uint("max")
	if minOptions > 0xff || maxOptions > 0xff {
		return fmt.Errorf("invalid min/max options: %d/%d", minOptions, maxOptions)
	}

	a := &attachment.PollCreation{
		PollName:           name,
		PollDescription:    c.String("description"),
		PollOptions:        c.StringSlice("option"),
		MinNumberOfOptions: uint8(minOptions),
		MaxNumberOfOptions: uint8(maxOptions),
		OptionsAreBinary:   c.Bool("binary"),
	}
	return sendTransaction(c, m, 0, 0, a)
}
