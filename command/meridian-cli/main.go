// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/meridianchain/go-meridian/chain"
	"github.com/meridianchain/go-meridian/command/meridian-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	network string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "meridian-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to `NETWORK` [meridian|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}

	txFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "fee, f",
			Value: "100000000",
			Usage: " transaction fee `QUANTS`",
		},
		cli.UintFlag{
			Name:  "deadline, D",
			Value: chain.MaximumDeadline,
			Usage: " transaction deadline `MINUTES`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise meridian-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*node host and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " use an existing seed `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " use an existing seed `SEED`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive-only account `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "generate",
			Usage:  "generate a seed and account, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:   "list",
			Usage:  "list identities in the config file",
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display meridian-cli configuration",
			Action: runInfo,
		},
		{
			Name:      "status",
			Usage:     "display node blockchain status, or one transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: " transaction identifier to look up `TXID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "send",
			Usage:     "send an amount to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the amount `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to send `QUANTS`",
				},
			}, txFlags...),
			Action: runSend,
		},
		{
			Name:      "message",
			Usage:     "send an arbitrary message",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " identity name or account to receive the message `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*message text `STRING`",
				},
				cli.BoolFlag{
					Name:  "hex, x",
					Usage: " treat the message as hex data",
				},
			}, txFlags...),
			Action: runMessage,
		},
		{
			Name:      "alias",
			Usage:     "assign, sell or buy an alias",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*alias name `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " alias target `URI`",
				},
				cli.StringFlag{
					Name:  "sell, s",
					Value: "",
					Usage: " offer the alias for sale at `QUANTS`",
				},
				cli.BoolFlag{
					Name:  "buy, b",
					Usage: " buy the alias",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " counterparty account for sell/buy `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: " amount for a buy `QUANTS`",
				},
			}, txFlags...),
			Action: runAlias,
		},
		{
			Name:      "lease",
			Usage:     "lease the account balance to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to lease to `ACCOUNT`",
				},
				cli.UintFlag{
					Name:  "period, P",
					Value: 1440,
					Usage: " leasing period in blocks `NUMBER`",
				},
			}, txFlags...),
			Action: runLease,
		},
		{
			Name:      "mint",
			Usage:     "submit a currency minting solution",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "currency, c",
					Value: "",
					Usage: "*currency identifier `ID`",
				},
				cli.StringFlag{
					Name:  "nonce, N",
					Value: "",
					Usage: "*minting nonce `NUMBER`",
				},
				cli.StringFlag{
					Name:  "units, u",
					Value: "",
					Usage: "*units to mint `NUMBER`",
				},
				cli.StringFlag{
					Name:  "counter, C",
					Value: "",
					Usage: "*minting counter `NUMBER`",
				},
			}, txFlags...),
			Action: runMint,
		},
		{
			Name:      "poll",
			Usage:     "create a poll",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*poll name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " poll description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "option, o",
					Usage: "*poll option `STRING`, repeat for each option",
				},
				cli.UintFlag{
					Name:  "min",
					Value: 1,
					Usage: " minimum options per vote `NUMBER`",
				},
				cli.UintFlag{
					Name:  "max",
					Value: 1,
					Usage: " maximum options per vote `NUMBER`",
				},
				cli.BoolFlag{
					Name:  "binary, b",
					Usage: " options are binary",
				},
			}, txFlags...),
			Action: runPoll,
		},
		{
			Name:      "vote",
			Usage:     "cast votes on a poll",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "poll, P",
					Value: "",
					Usage: "*poll transaction identifier `ID`",
				},
				cli.StringFlag{
					Name:  "votes, V",
					Value: "",
					Usage: "*comma separated votes, e.g. `1,-1,0`",
				},
			}, txFlags...),
			Action: runVote,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*packed transaction `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:   "password",
			Usage:  "change default identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display meridian-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// these commands never touch the config file
		command := c.Args().Get(0)
		switch command {
		case "version", "generate", "decode":
			return nil
		}

		network := c.GlobalString("network")
		switch network {
		case "meridian", "live":
			network = chain.Meridian
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be meridian/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				network: network,
				testnet: network != chain.Meridian,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  config,
				save:    false,
				network: config.Network,
				testnet: config.Network != chain.Meridian,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
