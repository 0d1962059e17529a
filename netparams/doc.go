// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netparams defines the per-network prefixes and derivation
// parameters used to encode Juno Cash unified viewing keys and addresses.
//
// Each network pairs a viewing key prefix with the address prefix used for
// receivers derived from it, so that a key decoded on one network always
// yields addresses for that same network:
//
//	net, ok := netparams.ByViewingKeyHRP(hrp)
//	if !ok {
//		// Not a known network.
//	}
//	addr, err := unified.EncodeSingle(net.AddressHRP, unified.TypecodeOrchard,
//		raw[:])
//
// The three standard networks (main, test and regression test) are
// incompatible with each other and applications should refuse input intended
// for a network they are not operating on.
package netparams
