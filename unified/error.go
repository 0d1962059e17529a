// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidEncoding is returned when a string is not valid bech32m.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrHRPMismatch is returned when a string is valid bech32m but its
	// human-readable part is not one of the accepted candidates.
	ErrHRPMismatch = ErrorKind("ErrHRPMismatch")

	// ErrHRPTooLong is returned when a human-readable part does not fit in
	// the padding block.  Only locally configured prefixes can trigger it.
	ErrHRPTooLong = ErrorKind("ErrHRPTooLong")

	// ErrInvalidPayloadLength is returned when a padded payload is outside
	// the length range accepted by the F4Jumble permutation.
	ErrInvalidPayloadLength = ErrorKind("ErrInvalidPayloadLength")

	// ErrInvalidPadding is returned when the trailing padding block does not
	// match the one derived from the human-readable part.
	ErrInvalidPadding = ErrorKind("ErrInvalidPadding")

	// ErrTruncated is returned when an item's typecode, length or value
	// runs past the end of the payload.
	ErrTruncated = ErrorKind("ErrTruncated")

	// ErrNonCanonical is returned when a typecode or length uses an overlong
	// compact size encoding.
	ErrNonCanonical = ErrorKind("ErrNonCanonical")

	// ErrNoItems is returned when a container holds no items.
	ErrNoItems = ErrorKind("ErrNoItems")

	// ErrItemNotFound is returned when a container holds no item of the
	// requested typecode.
	ErrItemNotFound = ErrorKind("ErrItemNotFound")

	// ErrDuplicateItem is returned when a container holds more than one item
	// of a typecode that must be unique.
	ErrDuplicateItem = ErrorKind("ErrDuplicateItem")

	// ErrEncodingFailed is returned when a well-formed payload could not be
	// permuted or rendered as bech32m.
	ErrEncodingFailed = ErrorKind("ErrEncodingFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to unified containers.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
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
