// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"errors"
	"fmt"
	"strings"

	"github.com/junocash/junoaddr/bech32m"
	"github.com/junocash/junoaddr/f4jumble"
)

// checkPayloadLength ensures a padded payload can be permuted.
func checkPayloadLength(n int) error {
	if n < f4jumble.MinLength || n > f4jumble.MaxLength {
		str := fmt.Sprintf("padded payload of %d bytes is outside the range "+
			"%d..%d", n, f4jumble.MinLength, f4jumble.MaxLength)
		return makeError(ErrInvalidPayloadLength, str)
	}
	return nil
}

// Encode encodes items as a unified container with the given human-readable
// part.  The human-readable part is lowercased before it is used for both the
// padding block and the bech32m encoding.
func Encode(hrp string, items []Item) (string, error) {
	hrp = strings.ToLower(hrp)
	raw, err := SerializeItems(items)
	if err != nil {
		return "", err
	}
	padded, err := Pad(raw, hrp)
	if err != nil {
		return "", err
	}
	if err := checkPayloadLength(len(padded)); err != nil {
		return "", err
	}
	jumbled, err := f4jumble.Jumble(padded)
	if err != nil {
		str := fmt.Sprintf("unable to permute payload: %v", err)
		return "", makeError(ErrEncodingFailed, str)
	}
	encoded, err := bech32m.EncodeFromBase256(hrp, jumbled)
	if err != nil {
		str := fmt.Sprintf("unable to encode payload: %v", err)
		return "", makeError(ErrEncodingFailed, str)
	}
	return encoded, nil
}

// EncodeSingle encodes a container holding exactly one item.
func EncodeSingle(hrp string, typecode uint64, value []byte) (string, error) {
	return Encode(hrp, []Item{{Typecode: typecode, Value: value}})
}

// Decode decodes a unified container whose human-readable part must be one
// of candidates.  It returns the matched human-readable part and the items in
// their encoded order.
//
// The checksum commits to the human-readable part, so at most one candidate
// can match a given string.  Failures are reported with the following
// precedence: ErrInvalidEncoding for strings that are not valid bech32m, then
// ErrHRPMismatch, then the structural errors of the payload.
func Decode(s string, candidates []string) (string, []Item, error) {
	hrp, payload, err := bech32m.DecodeMatch(s, candidates)
	if err != nil {
		if errors.Is(err, bech32m.ErrHRPMismatch) {
			return "", nil, makeError(ErrHRPMismatch, err.Error())
		}
		str := fmt.Sprintf("invalid bech32m string: %v", err)
		return "", nil, makeError(ErrInvalidEncoding, str)
	}
	if err := checkPayloadLength(len(payload)); err != nil {
		return "", nil, err
	}
	unjumbled, err := f4jumble.Unjumble(payload)
	if err != nil {
		str := fmt.Sprintf("unable to invert payload permutation: %v", err)
		return "", nil, makeError(ErrInvalidPayloadLength, str)
	}
	raw, err := Unpad(unjumbled, hrp)
	if err != nil {
		return "", nil, err
	}
	items, err := ParseItems(raw)
	if err != nil {
		return "", nil, err
	}
	return hrp, items, nil
}

// DecodeSingle decodes a unified container and returns the value of its only
// item with the given typecode.  Items with other typecodes are ignored.
func DecodeSingle(s string, candidates []string, typecode uint64) (string, []byte, error) {
	hrp, items, err := Decode(s, candidates)
	if err != nil {
		return "", nil, err
	}
	value, err := FindSingle(items, typecode)
	if err != nil {
		return "", nil, err
	}
	return hrp, value, nil
}
