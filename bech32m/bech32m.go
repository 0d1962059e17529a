// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32m

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/bech32"
)

// Charset is the set of characters used in the data section of bech32m
// strings.  The index of each character is the 5-bit value it encodes.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// checksumConst is the value the polymod of a valid bech32m string
	// (HRP expansion, data and checksum) must equal.
	checksumConst = 0x2bc830a3

	// checksumLen is the number of 5-bit groups in the checksum.
	checksumLen = 6

	// minLength is the length of the shortest possible string: a single
	// character HRP, the separator and the checksum.
	minLength = 1 + 1 + checksumLen

	// MaxHRPLen is the maximum length of the human-readable part.
	MaxHRPLen = 83

	// maxPayloadBytes mirrors the largest message accepted by F4Jumble.
	maxPayloadBytes = 4194368

	// MaxLength is the maximum total length of an encoded string.
	MaxLength = MaxHRPLen + 1 + (maxPayloadBytes*8+4)/5 + checksumLen
)

// gen holds the generator coefficients of the BCH code.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps an ASCII character to its 5-bit value, or -1 if the
// character is not part of Charset.  Upper and lower case letters map to the
// same value.
var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(Charset); i++ {
		c := Charset[i]
		rev[c] = int8(i)
		if c >= 'a' && c <= 'z' {
			rev[c-'a'+'A'] = int8(i)
		}
	}
	return rev
}()

// polymodStep feeds one 5-bit value into the running checksum.
func polymodStep(chk uint32, v byte) uint32 {
	top := chk >> 25
	chk = (chk&0x1ffffff)<<5 ^ uint32(v)
	for i := 0; i < 5; i++ {
		if (top>>uint(i))&1 == 1 {
			chk ^= gen[i]
		}
	}
	return chk
}

// polymod computes the checksum polymod over the expanded HRP followed by the
// provided 5-bit values.  The HRP is expected to already be lowercase.
func polymod(hrp string, values []byte) uint32 {
	chk := uint32(1)
	for i := 0; i < len(hrp); i++ {
		chk = polymodStep(chk, hrp[i]>>5)
	}
	chk = polymodStep(chk, 0)
	for i := 0; i < len(hrp); i++ {
		chk = polymodStep(chk, hrp[i]&31)
	}
	for _, v := range values {
		chk = polymodStep(chk, v)
	}
	return chk
}

// writeChecksum appends the 6 checksum characters for hrp and data to sb.
func writeChecksum(sb *strings.Builder, hrp string, data []byte) {
	chk := polymod(hrp, data)
	for i := 0; i < checksumLen; i++ {
		chk = polymodStep(chk, 0)
	}
	chk ^= checksumConst
	for i := 0; i < checksumLen; i++ {
		sb.WriteByte(Charset[(chk>>uint(5*(checksumLen-1-i)))&31])
	}
}

// validateHRP ensures hrp is usable as the human-readable part of a string.
func validateHRP(hrp string) error {
	if len(hrp) == 0 || len(hrp) > MaxHRPLen {
		str := fmt.Sprintf("invalid HRP length %d (must be 1..%d)", len(hrp),
			MaxHRPLen)
		return makeError(ErrInvalidHRP, str)
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			str := fmt.Sprintf("invalid HRP character %#x at index %d",
				hrp[i], i)
			return makeError(ErrInvalidHRP, str)
		}
	}
	return nil
}

// Encode encodes a byte slice into a bech32m string with the given
// human-readable part.  Each element of data must be a 5-bit value.  The
// result is always lowercase.
func Encode(hrp string, data []byte) (string, error) {
	if err := validateHRP(hrp); err != nil {
		return "", err
	}
	totalLen := len(hrp) + 1 + len(data) + checksumLen
	if totalLen > MaxLength {
		str := fmt.Sprintf("encoded length %d exceeds maximum %d", totalLen,
			MaxLength)
		return "", makeError(ErrInvalidLength, str)
	}

	hrp = strings.ToLower(hrp)
	var sb strings.Builder
	sb.Grow(totalLen)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for i, b := range data {
		if b >= 32 {
			str := fmt.Sprintf("data value %d at index %d is not a 5-bit "+
				"group", b, i)
			return "", makeError(ErrInvalidCharacter, str)
		}
		sb.WriteByte(Charset[b])
	}
	writeChecksum(&sb, hrp, data)
	return sb.String(), nil
}

// EncodeFromBase256 converts a base256-encoded byte slice into 5-bit groups
// and encodes it as a bech32m string with the given human-readable part.
func EncodeFromBase256(hrp string, data []byte) (string, error) {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", makeError(ErrInvalidBitGroups, err.Error())
	}
	return Encode(hrp, converted)
}

// Decode decodes a bech32m string, verifying its checksum.  It returns the
// lowercase human-readable part and the data part as 5-bit groups excluding
// the checksum.
func Decode(s string) (string, []byte, error) {
	if len(s) < minLength || len(s) > MaxLength {
		str := fmt.Sprintf("invalid string length %d (must be %d..%d)",
			len(s), minLength, MaxLength)
		return "", nil, makeError(ErrInvalidLength, str)
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 {
			str := fmt.Sprintf("invalid character %#x at index %d", c, i)
			return "", nil, makeError(ErrInvalidCharacter, str)
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
	}
	if hasLower && hasUpper {
		return "", nil, makeError(ErrMixedCase, "string uses mixed case")
	}
	s = strings.ToLower(s)

	// The separator is the last '1' since the data part cannot contain one.
	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+1+checksumLen > len(s) {
		str := fmt.Sprintf("invalid separator index %d", sep)
		return "", nil, makeError(ErrInvalidSeparator, str)
	}
	hrp := s[:sep]
	if len(hrp) > MaxHRPLen {
		str := fmt.Sprintf("HRP length %d exceeds maximum %d", len(hrp),
			MaxHRPLen)
		return "", nil, makeError(ErrInvalidHRP, str)
	}

	data := make([]byte, len(s)-sep-1)
	for i := range data {
		c := s[sep+1+i]
		v := charsetRev[c]
		if v < 0 {
			str := fmt.Sprintf("invalid data character %q at index %d", c,
				sep+1+i)
			return "", nil, makeError(ErrInvalidCharacter, str)
		}
		data[i] = byte(v)
	}

	if polymod(hrp, data) != checksumConst {
		return "", nil, makeError(ErrInvalidChecksum, "checksum mismatch")
	}

	return hrp, data[:len(data)-checksumLen], nil
}

// DecodeToBase256 decodes a bech32m string and converts the data part from
// 5-bit groups to bytes.  Incomplete trailing groups must be zero bits and no
// longer than 4 bits.
func DecodeToBase256(s string) (string, []byte, error) {
	hrp, data, err := Decode(s)
	if err != nil {
		return "", nil, err
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, makeError(ErrInvalidBitGroups, err.Error())
	}
	return hrp, converted, nil
}

// DecodeMatch decodes a bech32m string to bytes and requires its
// human-readable part to equal one of candidates (compared case-insensitively).
// A well-formed string with any other HRP fails with ErrHRPMismatch, while a
// malformed string always reports its format error.
func DecodeMatch(s string, candidates []string) (string, []byte, error) {
	hrp, data, err := DecodeToBase256(s)
	if err != nil {
		return "", nil, err
	}
	for _, candidate := range candidates {
		if strings.ToLower(candidate) == hrp {
			return hrp, data, nil
		}
	}
	str := fmt.Sprintf("HRP %q is not one of %q", hrp, candidates)
	return "", nil, makeError(ErrHRPMismatch, str)
}
