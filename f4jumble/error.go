// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package f4jumble

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength is returned when a message is shorter than MinLength
	// or longer than MaxLength.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrStreamExhausted is returned when the G round function would need
	// more output blocks than its 16-bit block counter can address.
	ErrStreamExhausted = ErrorKind("ErrStreamExhausted")

	// ErrHashConfig is returned when the underlying hash rejects its
	// parameters.
	ErrHashConfig = ErrorKind("ErrHashConfig")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to the F4Jumble permutation.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
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
