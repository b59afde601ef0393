// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/account"
	"github.com/meridianchain/go-meridian/chain"
	"github.com/meridianchain/go-meridian/signing"
)

func runGenerate(c *cli.Context) error {

	network := c.GlobalString("network")
	testnet := chain.Meridian != network && "live" != network

	seed, err := signing.NewSeed(testnet)
	if nil != err {
		return err
	}

	core, _, err := signing.DecodeSeed(seed)
	if nil != err {
		return err
	}
	signer, err := signing.NewSeedSigner(core)
	if nil != err {
		return err
	}

	accountID, err := signing.PublicKeyID(signer.PublicKey(), signing.SHA3{})
	if nil != err {
		return err
	}

	type generated struct {
		Seed      string `json:"seed"`
		PublicKey string `json:"publicKey"`
		Account   string `json:"account"`
		AccountRS string `json:"accountRS"`
		Testnet   bool   `json:"testnet"`
	}

	printJson(c.App.Writer, generated{
		Seed:      seed,
		PublicKey: hex.EncodeToString(signer.PublicKey()),
		Account:   accountID.String(),
		AccountRS: account.String(accountID),
		Testnet:   testnet,
	})
	return nil
}
