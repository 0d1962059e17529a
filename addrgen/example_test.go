// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrgen_test

import (
	"errors"
	"fmt"

	"github.com/junocash/junoaddr/addrgen"
	"github.com/junocash/junoaddr/orchard/devkeys"
)

// This example demonstrates how the stable code of a rejected request is
// obtained.
func ExampleCodeOf() {
	d, err := addrgen.New(&addrgen.Config{Keys: devkeys.New()})
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = d.Batch("jview1...", 0, 0)
	fmt.Println(addrgen.CodeOf(err))
	fmt.Println(errors.Is(err, addrgen.ErrCountZero))

	_, err = d.Derive("   ", 0)
	fmt.Println(addrgen.CodeOf(err))

	// Output:
	// count_zero
	// true
	// ufvk_empty
}
