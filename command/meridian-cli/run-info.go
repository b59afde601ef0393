// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type info struct {
		File            string   `json:"file"`
		Network         string   `json:"network"`
		DefaultIdentity string   `json:"defaultIdentity"`
		Connections     []string `json:"connections"`
		Identities      int      `json:"identities"`
	}

	printJson(m.w, info{
		File:            m.file,
		Network:         m.network,
		DefaultIdentity: m.config.DefaultIdentity,
		Connections:     m.config.Connections,
		Identities:      len(m.config.Identities),
	})
	return nil
}
