// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// MainNetParams returns the network parameters for the main Juno Cash
// network.
func MainNetParams() *Params {
	return &Params{
		Name:          "mainnet",
		ViewingKeyHRP: "jview",
		AddressHRP:    "j",
		CoinType:      8133,
	}
}
