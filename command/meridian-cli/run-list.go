// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type row struct {
		Name        string `json:"name"`
		Account     string `json:"account"`
		Description string `json:"description"`
		HasSeed     bool   `json:"hasSeed"`
		Default     bool   `json:"default"`
	}

	names := make([]string, 0, len(m.config.Identities))
	for name := range m.config.Identities {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]row, 0, len(names))
	for _, name := range names {
		id := m.config.Identities[name]
		rows = append(rows, row{
			Name:        name,
			Account:     id.Account,
			Description: id.Description,
			HasSeed:     "" != id.Data,
			Default:     name == m.config.DefaultIdentity,
		})
	}

	printJson(m.w, rows)
	return nil
}
