// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/junocash/junoaddr/bech32m"
	"github.com/junocash/junoaddr/f4jumble"
)

var viewingKeyHRPs = []string{"jview", "jviewtest", "jviewregtest"}

// randomValue returns n random bytes.
func randomValue(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

// encodeRaw builds a container string around an arbitrary raw payload so
// tests can exercise malformed item sequences.
func encodeRaw(t *testing.T, hrp string, raw []byte) string {
	t.Helper()

	padded, err := Pad(raw, hrp)
	if err != nil {
		t.Fatalf("pad: %v", err)
	}
	jumbled, err := f4jumble.Jumble(padded)
	if err != nil {
		t.Fatalf("jumble: %v", err)
	}
	s, err := bech32m.EncodeFromBase256(hrp, jumbled)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return s
}

// TestContainerRoundTrip ensures containers decode to the prefix and items
// they were encoded from.
func TestContainerRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hrp   string
		items []Item
	}{{
		name:  "viewing key",
		hrp:   "jview",
		items: []Item{{Typecode: TypecodeOrchard, Value: randomValue(96)}},
	}, {
		name:  "address on testnet",
		hrp:   "jtest",
		items: []Item{{Typecode: TypecodeOrchard, Value: randomValue(43)}},
	}, {
		name: "unknown items around orchard",
		hrp:  "jviewregtest",
		items: []Item{
			{Typecode: 0xfffe, Value: randomValue(3)},
			{Typecode: TypecodeOrchard, Value: randomValue(96)},
			{Typecode: 0x01, Value: randomValue(20)},
		},
	}, {
		name: "duplicate typecodes are preserved",
		hrp:  "j",
		items: []Item{
			{Typecode: 0x02, Value: randomValue(43)},
			{Typecode: 0x02, Value: randomValue(43)},
		},
	}, {
		name:  "large value",
		hrp:   "jview",
		items: []Item{{Typecode: 0x100000000, Value: randomValue(70000)}},
	}}

	for _, test := range tests {
		candidates := append([]string{test.hrp}, viewingKeyHRPs...)
		encoded, err := Encode(test.hrp, test.items)
		if err != nil {
			t.Errorf("%s: encode: %v", test.name, err)
			continue
		}
		if !strings.HasPrefix(encoded, test.hrp+"1") {
			t.Errorf("%s: unexpected prefix in %s", test.name, encoded)
			continue
		}
		hrp, items, err := Decode(encoded, candidates)
		if err != nil {
			t.Errorf("%s: decode: %v", test.name, err)
			continue
		}
		if hrp != test.hrp {
			t.Errorf("%s: mismatched hrp -- got %q, want %q", test.name, hrp,
				test.hrp)
		}
		if !reflect.DeepEqual(items, test.items) {
			t.Errorf("%s: mismatched items -- got %s, want %s", test.name,
				spew.Sdump(items), spew.Sdump(test.items))
		}

		// Encoding is deterministic.
		again, err := Encode(test.hrp, test.items)
		if err != nil || again != encoded {
			t.Errorf("%s: encoding is not deterministic", test.name)
		}
	}
}

// sequentialBytes returns n bytes counting up from first.
func sequentialBytes(n int, first byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = first + byte(i)
	}
	return b
}

// TestKnownContainers ensures encoding produces the pinned strings and that
// they decode back to their items.
func TestKnownContainers(t *testing.T) {
	tests := []struct {
		name    string
		hrp     string
		items   []Item
		encoded string
	}{{
		name: "viewing key with unknown item",
		hrp:  "jview",
		items: []Item{
			{Typecode: TypecodeOrchard, Value: sequentialBytes(0x60, 0)},
			{Typecode: 0xfd00, Value: []byte{0x01, 0x02}},
		},
		encoded: "jview1ytg3azmg4st4cfqwhm5xqwmhy33lu4llr67z6nxxqv7hmhf744ptjn" +
			"0y4rchkt3pnajl7fz7m3jrrqr29u5cac9hhkcenmz2upqnr6csyy0nch6x70" +
			"842y5gegyq2h6a3y0zy89revz5tu8m7fj772n5dupjtmr9mcyx7lhhxyuy79" +
			"vh3ss082vwzlglkte0vjae5j",
	}, {
		name:  "testnet address",
		hrp:   "jtest",
		items: []Item{{Typecode: TypecodeOrchard, Value: sequentialBytes(43, 0)}},
		encoded: "jtest1y4mcv2rct9atuwy3ruftz5nc7rvmv42tzxjwttvr9vjzcnru3pwure" +
			"7aqh7c0h5t9ndt0ardz2845garmhpzhd5snqv5wz3ugvrx4l3t",
	}, {
		name: "unknown item first",
		hrp:  "jviewregtest",
		items: []Item{
			{Typecode: 0x10000, Value: bytes.Repeat([]byte{0xaa}, 5)},
			{Typecode: TypecodeOrchard, Value: bytes.Repeat([]byte{0xff}, 96)},
		},
		encoded: "jviewregtest1a527tcd64n7zs9vmphvknaameu9v56jkh4tukwav2qpsarw" +
			"j8xrq327x8m35rpv6x5hzvg2ythdapa83t457s326444rlv2fv40cud9hj06" +
			"er3xj77tdmqz5tax0h2wt4aggf2xve2aaesz067j5kh36f66mmj6m3kwqnjn" +
			"k6utv6w4kj0ml4v6nhch06mzlxr2a6z8uu4k5uy",
	}}

	for _, test := range tests {
		encoded, err := Encode(test.hrp, test.items)
		if err != nil {
			t.Errorf("%s: encode: %v", test.name, err)
			continue
		}
		if encoded != test.encoded {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				encoded, test.encoded)
			continue
		}
		candidates := append([]string{"jtest"}, viewingKeyHRPs...)
		hrp, items, err := Decode(test.encoded, candidates)
		if err != nil {
			t.Errorf("%s: decode: %v", test.name, err)
			continue
		}
		if hrp != test.hrp || !reflect.DeepEqual(items, test.items) {
			t.Errorf("%s: mismatched decode -- got %q %s", test.name, hrp,
				spew.Sdump(items))
		}
	}
}

// TestDecodeNetworks ensures each network's container is matched against the
// full candidate set.
func TestDecodeNetworks(t *testing.T) {
	t.Parallel()

	value := randomValue(96)
	for _, hrp := range viewingKeyHRPs {
		encoded, err := EncodeSingle(hrp, TypecodeOrchard, value)
		if err != nil {
			t.Fatalf("%s: encode: %v", hrp, err)
		}
		gotHRP, got, err := DecodeSingle(encoded, viewingKeyHRPs,
			TypecodeOrchard)
		if err != nil {
			t.Fatalf("%s: decode: %v", hrp, err)
		}
		if gotHRP != hrp || !bytes.Equal(got, value) {
			t.Fatalf("%s: mismatched result %q %x", hrp, gotHRP, got)
		}
	}
}

// TestDecodeErrors ensures malformed containers are rejected with the
// expected kind of error.
func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	valid, err := EncodeSingle("jview", TypecodeOrchard, randomValue(96))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	address, err := EncodeSingle("j", TypecodeOrchard, randomValue(43))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Corrupt the final checksum character.
	corrupted := []byte(valid)
	last := len(corrupted) - 1
	if corrupted[last] == 'q' {
		corrupted[last] = 'p'
	} else {
		corrupted[last] = 'q'
	}

	// A payload that is valid for mainnet re-encoded under the testnet
	// prefix keeps the mainnet padding.
	_, mainnetPayload, err := bech32m.DecodeToBase256(valid)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	replayed, err := bech32m.EncodeFromBase256("jviewtest", mainnetPayload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// A bech32m string whose payload is too short to permute.
	short, err := bech32m.EncodeFromBase256("jview", randomValue(40))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// A payload whose padding is intact but whose item list is followed by
	// a stray byte.
	trailing := encodeRaw(t, "jview", append([]byte{0x03, 0x20},
		append(randomValue(0x20), 0x07)...))

	tests := []struct {
		name string
		in   string
		want ErrorKind
	}{
		{"empty", "", ErrInvalidEncoding},
		{"garbage", "not a container", ErrInvalidEncoding},
		{"corrupted checksum", string(corrupted), ErrInvalidEncoding},
		{"truncated", valid[:len(valid)-1], ErrInvalidEncoding},
		{"address prefix", address, ErrHRPMismatch},
		{"cross network replay", replayed, ErrInvalidPadding},
		{"short payload", short, ErrInvalidPayloadLength},
		{"trailing bytes", trailing, ErrTruncated},
		{"non-canonical length", encodeRaw(t, "jview",
			append([]byte{0x03, 0xfd, 0x20, 0x00}, randomValue(0x20)...)),
			ErrNonCanonical},
	}

	for _, test := range tests {
		_, _, err := Decode(test.in, viewingKeyHRPs)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: mismatched error -- got %v, want %v", test.name,
				err, test.want)
		}
	}
}

// TestDecodeSingleDuplicates ensures a duplicate item is never silently
// chosen, even when the values are identical.
func TestDecodeSingleDuplicates(t *testing.T) {
	t.Parallel()

	value := randomValue(96)
	for _, items := range [][]Item{
		{{Typecode: TypecodeOrchard, Value: value},
			{Typecode: TypecodeOrchard, Value: value}},
		{{Typecode: TypecodeOrchard, Value: value},
			{Typecode: 0x50, Value: value},
			{Typecode: TypecodeOrchard, Value: randomValue(96)}},
	} {
		encoded, err := Encode("jview", items)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		_, _, err = DecodeSingle(encoded, viewingKeyHRPs, TypecodeOrchard)
		if !errors.Is(err, ErrDuplicateItem) {
			t.Fatalf("got %v, want %v", err, ErrDuplicateItem)
		}
	}

	encoded, err := EncodeSingle("jview", 0x02, value)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, _, err = DecodeSingle(encoded, viewingKeyHRPs, TypecodeOrchard)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want %v", err, ErrItemNotFound)
	}
}

// TestEncodeErrors ensures containers that cannot be represented are refused.
func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hrp   string
		items []Item
		want  ErrorKind
	}{
		{"no items", "jview", nil, ErrNoItems},
		{"hrp too long", "jviewregtestlong!", []Item{{Typecode: 3,
			Value: randomValue(96)}}, ErrHRPTooLong},
		{"payload too short", "j", []Item{{Typecode: 3,
			Value: randomValue(20)}}, ErrInvalidPayloadLength},
	}
	for _, test := range tests {
		_, err := Encode(test.hrp, test.items)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: mismatched error -- got %v, want %v", test.name,
				err, test.want)
		}
	}
}
