// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/command/meridian-cli/configuration"
	"github.com/meridianchain/go-meridian/signing"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return fmt.Errorf("missing identity name")
	}

	connect := c.String("connect")
	for _, hostPort := range strings.Split(connect, ",") {
		if _, _, err := net.SplitHostPort(hostPort); nil != err {
			return fmt.Errorf("invalid connect: %q: %s", connect, err)
		}
	}

	description := c.String("description")
	if "" == description {
		return fmt.Errorf("missing description")
	}

	seed, err := checkSeed(c.String("seed"), m.testnet)
	if nil != err {
		return err
	}

	network := m.network

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "network: %s\n", network)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Network:         network,
		Connections:     strings.Split(connect, ","),
		Identities:      make(map[string]configuration.Identity),
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPasswordReader()
		if nil != err {
			return err
		}
	}

	err = config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}

// checkSeed - validate a supplied seed or create a fresh one
func checkSeed(seed string, testnet bool) (string, error) {
	if "" == seed {
		return signing.NewSeed(testnet)
	}
	_, seedIsTest, err := signing.DecodeSeed(seed)
	if nil != err {
		return "", err
	}
	if seedIsTest != testnet {
		return "", fmt.Errorf("seed is for the wrong network")
	}
	return seed, nil
}
