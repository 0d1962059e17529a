// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import "strings"

// Params defines a Juno Cash network by the parameters needed to encode
// viewing keys and addresses.  These parameters may be used to differentiate
// keys and addresses intended for one network from those intended for
// another.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// ViewingKeyHRP is the human-readable part of unified full viewing keys
	// for the network.
	ViewingKeyHRP string

	// AddressHRP is the human-readable part of unified addresses for the
	// network.
	AddressHRP string

	// CoinType is the ZIP 32 coin type used in the account derivation path
	// m/32'/coin_type'/account'.
	CoinType uint32
}

// All returns the parameters of every standard network in the order they are
// probed when the network of an encoded key is not known in advance.
func All() []*Params {
	return []*Params{MainNetParams(), TestNetParams(), RegNetParams()}
}

// ViewingKeyHRPs returns the viewing key prefixes of nets in order.
func ViewingKeyHRPs(nets []*Params) []string {
	hrps := make([]string, 0, len(nets))
	for _, net := range nets {
		hrps = append(hrps, net.ViewingKeyHRP)
	}
	return hrps
}

// ByViewingKeyHRP returns the standard network whose viewing key prefix is
// hrp, compared case-insensitively.
func ByViewingKeyHRP(hrp string) (*Params, bool) {
	return Find(All(), hrp)
}

// Find returns the network within nets whose viewing key prefix is hrp,
// compared case-insensitively.
func Find(nets []*Params, hrp string) (*Params, bool) {
	for _, net := range nets {
		if strings.EqualFold(net.ViewingKeyHRP, hrp) {
			return net, true
		}
	}
	return nil, false
}

// ByName returns the standard network with the given name.
func ByName(name string) (*Params, bool) {
	for _, net := range All() {
		if net.Name == name {
			return net, true
		}
	}
	return nil, false
}
