// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/transactionrecord"
)

func runDecode(c *cli.Context) error {

	arg := c.String("transaction")
	if "" == arg {
		return fmt.Errorf("missing transaction")
	}

	packed, err := hex.DecodeString(arg)
	if nil != err {
		return err
	}

	tx, err := transactionrecord.Unpack(packed)
	if nil != err {
		return err
	}

	printJson(c.App.Writer, tx)
	return nil
}
