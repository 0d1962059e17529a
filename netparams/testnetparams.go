// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// TestNetParams returns the network parameters for the public test network.
// All test networks share the ZIP 32 testnet coin type.
func TestNetParams() *Params {
	return &Params{
		Name:          "testnet",
		ViewingKeyHRP: "jviewtest",
		AddressHRP:    "jtest",
		CoinType:      1,
	}
}
