// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package unified implements the ZIP 316 unified container encoding used for
unified addresses and unified viewing keys.

A container is an ordered sequence of typecode/value items.  Encoding
serializes the items with compact size prefixes, appends a 16 byte padding
block derived from the human-readable part, applies the F4Jumble permutation
and renders the result as a bech32m string:

	items -> SerializeItems -> Pad -> f4jumble.Jumble -> bech32m

Decoding reverses every step and validates each one.  Items with typecodes the
caller does not understand are returned untouched so that callers can skip
them.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind, so
callers can test for specific conditions with errors.Is:

	if errors.Is(err, unified.ErrHRPMismatch) {
		// The string belongs to a different network or container kind.
	}
*/
package unified
