// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orchard defines the interface to the Orchard key derivation
// collaborator along with the fixed sizes of the values it produces.
//
// Address derivation treats Orchard keys as opaque bytes.  The elliptic curve
// work of turning a seed into a spending key, a spending key into a full
// viewing key and a full viewing key into receivers is delegated to a
// KeyDeriver implementation.
package orchard

import "fmt"

const (
	// SpendingKeySize is the size of a serialized spending key.
	SpendingKeySize = 32

	// FullViewingKeySize is the size of a serialized full viewing key: the
	// encodings of ak, nk and rivk.
	FullViewingKeySize = 96

	// DiversifierSize is the size of a receiver diversifier.
	DiversifierSize = 11

	// RawAddressSize is the size of a raw receiver: the diversifier followed
	// by the 32 byte encoding of pk_d.
	RawAddressSize = DiversifierSize + 32
)

// Scope selects between receivers intended to be given out (external) and
// receivers used for change (internal).
type Scope uint8

// These constants define the supported scopes.
const (
	ScopeExternal Scope = iota
	ScopeInternal
)

// String returns the scope as a human-readable string.
func (s Scope) String() string {
	switch s {
	case ScopeExternal:
		return "external"
	case ScopeInternal:
		return "internal"
	}
	return fmt.Sprintf("unknown scope (%d)", uint8(s))
}

// SpendingKey is a serialized Orchard spending key.
type SpendingKey [SpendingKeySize]byte

// RawAddress is a serialized Orchard receiver.
type RawAddress [RawAddressSize]byte

// FullViewingKey is a parsed Orchard full viewing key.
type FullViewingKey interface {
	// Bytes returns the serialized key.
	Bytes() [FullViewingKeySize]byte

	// AddressAt returns the receiver at the given diversifier index within
	// scope.
	AddressAt(index uint32, scope Scope) (RawAddress, error)
}

// KeyDeriver is the Orchard key derivation collaborator.  Implementations
// must be deterministic and safe for concurrent use.
type KeyDeriver interface {
	// SpendingKeyFromSeed derives the ZIP 32 account spending key at
	// m/32'/coinType'/account'.
	SpendingKeyFromSeed(seed []byte, coinType, account uint32) (*SpendingKey, error)

	// FullViewingKey derives the full viewing key of a spending key.
	FullViewingKey(sk *SpendingKey) (FullViewingKey, error)

	// ParseFullViewingKey parses serialized full viewing key bytes,
	// returning an error of kind ErrInvalidFullViewingKey when they do not
	// encode a valid key.
	ParseFullViewingKey(b *[FullViewingKeySize]byte) (FullViewingKey, error)
}
