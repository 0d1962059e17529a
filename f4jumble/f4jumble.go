// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package f4jumble implements the F4Jumble unkeyed length-preserving
// permutation defined in ZIP 316.
//
// The message is split into a left part of at most 64 bytes and a right part
// holding the remainder.  Four Feistel rounds alternate between XORing the
// right part with an expanded BLAKE2b stream over the left part (G) and XORing
// the left part with a BLAKE2b digest of the right part (H).  A change to any
// input bit therefore changes every output bit with high probability, which is
// what lets unified containers detect truncation and splicing.
package f4jumble

import (
	"fmt"

	"github.com/dchest/blake2b"
)

const (
	// MinLength is the shortest message the permutation accepts.
	MinLength = 48

	// MaxLength is the longest message the permutation accepts.
	MaxLength = 4194368

	// hashLen is the output length of a single BLAKE2b-512 invocation.
	hashLen = 64

	// maxStreamBlocks is the number of G blocks addressable by the 16-bit
	// little-endian block counter in the personalization.
	maxStreamBlocks = 1 << 16
)

var (
	personH = [13]byte{'U', 'A', '_', 'F', '4', 'J', 'u', 'm', 'b', 'l', 'e', '_', 'H'}
	personG = [13]byte{'U', 'A', '_', 'F', '4', 'J', 'u', 'm', 'b', 'l', 'e', '_', 'G'}
)

// checkLength returns an error when n is outside the accepted message range.
func checkLength(n int) error {
	if n < MinLength || n > MaxLength {
		str := fmt.Sprintf("message length %d is outside the range %d..%d",
			n, MinLength, MaxLength)
		return makeError(ErrInvalidLength, str)
	}
	return nil
}

// xorH XORs dst with the H round function of u.  The digest length equals
// len(dst), which is never more than hashLen.
func xorH(round byte, u, dst []byte) error {
	var person [16]byte
	copy(person[:], personH[:])
	person[13] = round

	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(len(dst)),
		Person: person[:],
	})
	if err != nil {
		return makeError(ErrHashConfig, err.Error())
	}
	h.Write(u)
	for i, b := range h.Sum(nil) {
		dst[i] ^= b
	}
	return nil
}

// xorG XORs dst with the G round function of u, which concatenates as many
// personalized BLAKE2b-512 blocks as needed and truncates to len(dst).
func xorG(round byte, u, dst []byte) error {
	numBlocks := (len(dst) + hashLen - 1) / hashLen
	if numBlocks > maxStreamBlocks {
		str := fmt.Sprintf("G stream of %d bytes needs %d blocks (max %d)",
			len(dst), numBlocks, maxStreamBlocks)
		return makeError(ErrStreamExhausted, str)
	}

	var person [16]byte
	copy(person[:], personG[:])
	person[13] = round

	var block [hashLen]byte
	for j := 0; j < numBlocks; j++ {
		person[14] = byte(j)
		person[15] = byte(j >> 8)
		h, err := blake2b.New(&blake2b.Config{
			Size:   hashLen,
			Person: person[:],
		})
		if err != nil {
			return makeError(ErrHashConfig, err.Error())
		}
		h.Write(u)
		h.Sum(block[:0])

		offset := j * hashLen
		n := len(dst) - offset
		if n > hashLen {
			n = hashLen
		}
		for i := 0; i < n; i++ {
			dst[offset+i] ^= block[i]
		}
	}
	return nil
}

// split returns the left and right parts of m.
func split(m []byte) ([]byte, []byte) {
	leftLen := len(m) / 2
	if leftLen > hashLen {
		leftLen = hashLen
	}
	return m[:leftLen], m[leftLen:]
}

// Jumble applies the F4Jumble permutation to m and returns the result in a
// new slice.  The message length must be within MinLength..MaxLength.
func Jumble(m []byte) ([]byte, error) {
	if err := checkLength(len(m)); err != nil {
		return nil, err
	}
	out := make([]byte, len(m))
	copy(out, m)
	a, b := split(out)

	// x = b ^ G0(a), y = a ^ H0(x), d = x ^ G1(y), c = y ^ H1(d).
	if err := xorG(0, a, b); err != nil {
		return nil, err
	}
	if err := xorH(0, b, a); err != nil {
		return nil, err
	}
	if err := xorG(1, a, b); err != nil {
		return nil, err
	}
	if err := xorH(1, b, a); err != nil {
		return nil, err
	}
	return out, nil
}

// Unjumble applies the inverse of the F4Jumble permutation to m and returns
// the result in a new slice.  The message length must be within
// MinLength..MaxLength.
func Unjumble(m []byte) ([]byte, error) {
	if err := checkLength(len(m)); err != nil {
		return nil, err
	}
	out := make([]byte, len(m))
	copy(out, m)
	c, d := split(out)

	// y = c ^ H1(d), x = d ^ G1(y), a = y ^ H0(x), b = x ^ G0(a).
	if err := xorH(1, d, c); err != nil {
		return nil, err
	}
	if err := xorG(1, c, d); err != nil {
		return nil, err
	}
	if err := xorH(0, d, c); err != nil {
		return nil, err
	}
	if err := xorG(0, c, d); err != nil {
		return nil, err
	}
	return out, nil
}
