// Copyright (c) 2019 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32m provides a Go implementation of the bech32m format specified in
BIP 350, without the 90 character limit imposed on segwit addresses.

Unified containers (ZIP 316) carry payloads that are far longer than the
segwit limit, so this package enforces MaxLength instead, which is large enough
for the longest payload the F4Jumble permutation accepts under the longest
permitted human-readable part.

A bech32m string consists of a human-readable part (HRP), the separator '1',
the data part, and a 6 character checksum.  The checksum covers the HRP as
well as the data, so a valid string unambiguously identifies its HRP.

DecodeMatch additionally checks the decoded HRP against a set of acceptable
candidates.  Format validity is always checked first: a string that is both
malformed and carries a foreign HRP reports the format error.
*/
package bech32m
