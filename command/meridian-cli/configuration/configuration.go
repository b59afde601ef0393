// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the meridian-cli configuration file
//
// a JSON file holding the node connections and the named identities.
// Seeds are stored encrypted; the password is never written anywhere
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/meridianchain/go-meridian/account"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/ident"
	"github.com/meridianchain/go-meridian/signing"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Network         string              `json:"network"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
//
// Account is the human-readable form; Data is the encrypted seed and
// is empty for a receive-only identity
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Private - the decrypted portion of an identity
type Private struct {
	Seed        string `json:"seed"`
	Description string `json:"description"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	// a hand-edited file may omit the identities object entirely
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - resolve an identity name to its account identifier
func (config *Configuration) Account(name string) (ident.ID, error) {
	id, err := config.Identity(name)
	if nil != err {
		return 0, err
	}
	return account.Parse(id.Account)
}

// Private - find identity and decrypt its data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// Signer - decrypt an identity and construct its signer
func (config *Configuration) Signer(password string, name string) (signing.Signer, error) {
	private, err := config.Private(password, name)
	if nil != err {
		return nil, err
	}
	core, _, err := signing.DecodeSeed(private.Seed)
	if nil != err {
		return nil, err
	}
	return signing.NewSeedSigner(core)
}

// AddIdentity - store an encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameExists
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
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

	config.Identities[name] = Identity{
		Description: description,
		Account:     account.String(accountID),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	return nil
}

// AddReceiveOnlyIdentity - store a public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameExists
	}

	_, err := account.Parse(acc)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}
	return nil
}
