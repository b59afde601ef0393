// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// meridian-cli
//
// command line client for the Meridian network
//
// transactions are assembled, validated and signed locally; only the
// finished byte form is ever sent to a node.  Identities and their
// encrypted seeds live in a per-network JSON configuration file under
// XDG_CONFIG_HOME/meridian-cli/
package main
