// Copyright (c) 2017-2022 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sampleconfig provides the commented example configuration files of
// the utilities in this repository.
package sampleconfig

import (
	_ "embed"
)

// sampleJunoaddrConf is a string containing the commented example config for
// junoaddr.
//
//go:embed sample-junoaddr.conf
var sampleJunoaddrConf string

// Junoaddr returns a string containing the commented example config for
// junoaddr.
func Junoaddr() string {
	return sampleJunoaddrConf
}
