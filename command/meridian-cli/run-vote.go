// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/ident"
)

func runVote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poll, err := ident.Parse(c.String("poll"))
	if nil != err || 0 == poll {
		return fmt.Errorf("invalid poll: %q", c.String("poll"))
	}

	votesArg := c.String("votes")
	if "" == votesArg {
		return fmt.Errorf("missing votes")
	}

	fields := strings.Split(votesArg, ",")
	votes := make([]int8, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 8)
		if nil != err {
			return fmt.Errorf("invalid vote: %q", field)
		}
		votes = append(votes, int8(v))
	}

	a := &attachment.VoteCasting{
		PollID: poll,
		Votes:  votes,
	}
	return sendTransaction(c, m, 0, 0, a)
}
