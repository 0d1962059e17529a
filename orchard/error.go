// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orchard

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidSeedLength is returned when a seed is shorter than 32 or
	// longer than 252 bytes.
	ErrInvalidSeedLength = ErrorKind("ErrInvalidSeedLength")

	// ErrInvalidChildIndex is returned when a coin type or account does not
	// fit in a hardened derivation index.
	ErrInvalidChildIndex = ErrorKind("ErrInvalidChildIndex")

	// ErrInvalidSpendingKey is returned when a spending key does not yield a
	// usable viewing key.
	ErrInvalidSpendingKey = ErrorKind("ErrInvalidSpendingKey")

	// ErrInvalidFullViewingKey is returned when serialized full viewing key
	// bytes do not encode a valid key.
	ErrInvalidFullViewingKey = ErrorKind("ErrInvalidFullViewingKey")

	// ErrInvalidScope is returned when an address is requested for an
	// unknown scope.
	ErrInvalidScope = ErrorKind("ErrInvalidScope")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a key derivation error.  It has full support for errors.Is
// and errors.As, so the caller can ascertain the specific reason for the error
// by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.  It is exported so key
// derivation backends report failures with the kinds defined here.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
