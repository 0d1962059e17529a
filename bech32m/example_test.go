// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32m_test

import (
	"encoding/hex"
	"fmt"

	"github.com/junocash/junoaddr/bech32m"
)

// This example demonstrates how to decode a bech32m encoded string.
func ExampleDecode() {
	encoded := "abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx"
	hrp, decoded, err := bech32m.Decode(encoded)
	if err != nil {
		fmt.Println("Error:", err)
	}

	// Show the decoded data.
	fmt.Println("Decoded human-readable part:", hrp)
	fmt.Println("Decoded Data:", hex.EncodeToString(decoded))

	// Output:
	// Decoded human-readable part: abcdef
	// Decoded Data: 1f1e1d1c1b1a191817161514131211100f0e0d0c0b0a09080706050403020100
}

// This example demonstrates how a string with an unexpected human-readable
// part is distinguished from a corrupted one.
func ExampleDecodeMatch() {
	encoded, err := bech32m.EncodeFromBase256("j", []byte("Test data"))
	if err != nil {
		fmt.Println("Error:", err)
	}

	_, _, err = bech32m.DecodeMatch(encoded, []string{"jview"})
	fmt.Println(err)

	// Output:
	// HRP "j" is not one of ["jview"]
}
