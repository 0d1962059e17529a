// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"bytes"
	"fmt"
)

// PaddingLen is the length of the padding block appended to every container.
const PaddingLen = 16

// padding returns the padding block for hrp: its ASCII bytes followed by
// zeros.  Distinct prefixes always produce distinct blocks, so a payload
// lifted from one network's container fails to unpad under another's.
func padding(hrp string) ([PaddingLen]byte, error) {
	var pad [PaddingLen]byte
	if len(hrp) > PaddingLen {
		str := fmt.Sprintf("HRP %q is longer than %d bytes", hrp, PaddingLen)
		return pad, makeError(ErrHRPTooLong, str)
	}
	copy(pad[:], hrp)
	return pad, nil
}

// Pad returns a copy of raw with the padding block for hrp appended.
func Pad(raw []byte, hrp string) ([]byte, error) {
	pad, err := padding(hrp)
	if err != nil {
		return nil, err
	}
	padded := make([]byte, 0, len(raw)+PaddingLen)
	padded = append(padded, raw...)
	return append(padded, pad[:]...), nil
}

// Unpad verifies that b ends with the padding block for hrp and returns the
// bytes before it.
func Unpad(b []byte, hrp string) ([]byte, error) {
	pad, err := padding(hrp)
	if err != nil {
		return nil, err
	}
	if len(b) < PaddingLen {
		str := fmt.Sprintf("payload of %d bytes cannot hold the %d byte "+
			"padding", len(b), PaddingLen)
		return nil, makeError(ErrInvalidPayloadLength, str)
	}
	split := len(b) - PaddingLen
	if !bytes.Equal(b[split:], pad[:]) {
		str := fmt.Sprintf("padding %x does not match HRP %q", b[split:], hrp)
		return nil, makeError(ErrInvalidPadding, str)
	}
	return b[:split], nil
}
