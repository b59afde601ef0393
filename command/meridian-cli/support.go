// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/meridianchain/go-meridian/account"
	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/nodeapi"
	"github.com/meridianchain/go-meridian/signing"
	"github.com/meridianchain/go-meridian/transactionrecord"
)

// printJson - pretty print a result on the output stream
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}

// checkFileExists - check if file exists, return true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// checkRecipient - resolve a flag to an account identifier
//
// the flag value is either an identity name from the config file or a
// literal account in MRD-… or decimal form
func checkRecipient(c *cli.Context, flagName string, m *metadata) (string, ident.ID, error) {
	recipient := c.String(flagName)
	if "" == recipient {
		return "", 0, fmt.Errorf("missing %s", flagName)
	}

	if id, err := m.config.Identity(recipient); nil == err {
		accountID, err := account.Parse(id.Account)
		if nil != err {
			return "", 0, err
		}
		return id.Account, accountID, nil
	}

	accountID, err := account.ParseAny(recipient)
	if nil != err {
		return "", 0, err
	}
	return recipient, accountID, nil
}

// checkIdentity - the identity selected by the global flag or default
func checkIdentity(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	if "" == name {
		return "", fmt.Errorf("no identity selected")
	}
	return name, nil
}

// getSigner - unlock the selected identity
func getSigner(c *cli.Context, m *metadata) (string, signing.Signer, error) {
	name, err := checkIdentity(c, m)
	if nil != err {
		return "", nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptCheckPasswordReader()
		if nil != err {
			return "", nil, err
		}
	}

	signer, err := m.config.Signer(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, signer, nil
}

// newNodeClient - connect to the first configured node
func newNodeClient(m *metadata) (*nodeapi.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, fmt.Errorf("no node connections configured")
	}

	host, portString, err := net.SplitHostPort(m.config.Connections[0])
	if nil != err {
		return nil, err
	}
	port, err := strconv.Atoi(portString)
	if nil != err {
		return nil, err
	}

	return nodeapi.NewClient(nodeapi.Configuration{
		Host: host,
		Port: port,
	}), nil
}

// checkAmount - parse a quantity flag
func checkAmount(c *cli.Context, flagName string, required bool) (int64, error) {
	value := c.String(flagName)
	if "" == value {
		if required {
			return 0, fmt.Errorf("missing %s", flagName)
		}
		return 0, nil
	}
	amount, err := strconv.ParseInt(value, 10, 64)
	if nil != err || amount < 0 {
		return 0, fmt.Errorf("invalid %s: %q", flagName, value)
	}
	return amount, nil
}

// sendTransaction - the shared tail of every sending command
//
// fetches the current economic clustering binding, assembles and signs
// the transaction, submits it and prints the node reply
func sendTransaction(c *cli.Context, m *metadata, recipient ident.ID, amount int64, a attachment.Attachment) error {

	_, signer, err := getSigner(c, m)
	if nil != err {
		return err
	}

	fee, err := checkAmount(c, "fee", true)
	if nil != err {
		return err
	}

	deadline := c.Uint("deadline")
	if deadline > 0xffff {
		return fmt.Errorf("invalid deadline: %d", deadline)
	}

	client, err := newNodeClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	ecBlock, err := client.GetECBlock()
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "ec block: %s height: %d\n", ecBlock.ID, ecBlock.Height)
	}

	txType := uint8(attachment.TypePayment)
	subtype := uint8(attachment.SubtypePaymentOrdinary)
	if nil != a {
		txType, subtype = a.TransactionType()
	}

	tx, err := transactionrecord.NewTransaction(transactionrecord.Parameters{
		Type:        txType,
		Subtype:     subtype,
		Deadline:    uint16(deadline),
		RecipientID: recipient,
		Amount:      amount,
		Fee:         fee,
		Attachment:  a,
		EcBlock:     ecBlock,
	}, signer)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %s\n", tx.ID())
	}

	reply, err := client.BroadcastTransaction(tx.Pack(false))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
