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

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	currency, err := ident.Parse(c.String("currency"))
	if nil != err || 0 == currency {
		return fmt.Errorf("invalid currency: %q", c.String("currency"))
	}

	nonce, err := checkAmount(c, "nonce", true)
	if nil != err {
		return err
	}
	units, err := checkAmount(c, "units", true)
	if nil != err {
		return err
	}
	counter, err := checkAmount(c, "counter", true)
	if nil != err {
		return err
	}

	a := &attachment.CurrencyMinting{
		Version:    1,
		Nonce:      nonce,
		CurrencyID: currency,
		Units:      units,
		Counter:    counter,
	}
	return sendTransaction(c, m, 0, 0, a)
}
