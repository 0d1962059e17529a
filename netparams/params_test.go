// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"reflect"
	"testing"
)

// TestPrefixesAreDistinct ensures no prefix is shared between networks or
// between container kinds and that every prefix fits the 16 byte padding
// block of a unified container.
func TestPrefixesAreDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, net := range All() {
		for _, hrp := range []string{net.ViewingKeyHRP, net.AddressHRP} {
			if len(hrp) == 0 || len(hrp) > 16 {
				t.Errorf("%s: prefix %q has invalid length", net.Name, hrp)
			}
			if other, ok := seen[hrp]; ok {
				t.Errorf("%s: prefix %q already used by %s", net.Name, hrp,
					other)
			}
			seen[hrp] = net.Name
		}
	}
}

// TestLookups ensures networks can be found by viewing key prefix and name.
func TestLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hrp  string
		want *Params
	}{
		{"jview", MainNetParams()},
		{"JVIEW", MainNetParams()},
		{"jviewtest", TestNetParams()},
		{"jviewregtest", RegNetParams()},
		{"j", nil},
		{"uview", nil},
	}
	for _, test := range tests {
		got, ok := ByViewingKeyHRP(test.hrp)
		if ok != (test.want != nil) {
			t.Errorf("%q: mismatched found flag %v", test.hrp, ok)
			continue
		}
		if ok && !reflect.DeepEqual(got, test.want) {
			t.Errorf("%q: got %+v, want %+v", test.hrp, got, test.want)
		}
	}

	for _, net := range All() {
		got, ok := ByName(net.Name)
		if !ok || !reflect.DeepEqual(got, net) {
			t.Errorf("%s: lookup by name failed", net.Name)
		}
	}

	want := []string{"jview", "jviewtest", "jviewregtest"}
	if got := ViewingKeyHRPs(All()); !reflect.DeepEqual(got, want) {
		t.Errorf("viewing key prefixes: got %v, want %v", got, want)
	}

	if _, ok := Find([]*Params{TestNetParams()}, "jview"); ok {
		t.Error("found mainnet in a testnet-only set")
	}
}
