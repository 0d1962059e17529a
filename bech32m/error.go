// Copyright (c) 2019 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32m

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrMixedCase is returned when a string contains both upper and lower
	// case characters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrInvalidCharacter is returned when a string contains a character
	// outside of the printable ASCII range or, in the data part, a character
	// that is not in the bech32 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidSeparator is returned when the separator is missing or placed
	// such that the human-readable part is empty or the checksum is too
	// short.
	ErrInvalidSeparator = ErrorKind("ErrInvalidSeparator")

	// ErrInvalidLength is returned when a string is shorter than the minimum
	// or longer than MaxLength.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidChecksum is returned when the bech32m checksum does not
	// verify.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidHRP is returned when a human-readable part handed to the
	// encoder is empty, too long, or contains characters outside the
	// printable ASCII range.
	ErrInvalidHRP = ErrorKind("ErrInvalidHRP")

	// ErrInvalidBitGroups is returned when data cannot be regrouped between
	// 5-bit and 8-bit elements, including non-zero trailing padding bits.
	ErrInvalidBitGroups = ErrorKind("ErrInvalidBitGroups")

	// ErrHRPMismatch is returned by DecodeMatch when a string is otherwise
	// valid but its human-readable part is not one of the candidates.
	ErrHRPMismatch = ErrorKind("ErrHRPMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to bech32m encoding and decoding.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
