// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network.  The purpose of
// this network is primarily for unit tests and local integration testing.
func RegNetParams() *Params {
	return &Params{
		Name:          "regnet",
		ViewingKeyHRP: "jviewregtest",
		AddressHRP:    "jregtest",
		CoinType:      1,
	}
}
