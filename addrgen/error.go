// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrgen

import "errors"

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
//
// The string value of each kind is a stable code that is reported across the
// foreign-function boundary and must never be renamed.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrUFVKEmpty indicates the viewing key string is empty or only holds
	// whitespace.
	ErrUFVKEmpty = ErrorKind("ufvk_empty")

	// ErrUFVKInvalidBech32m indicates the viewing key string is not a valid
	// bech32m string or its payload is not a well-formed container.
	ErrUFVKInvalidBech32m = ErrorKind("ufvk_invalid_bech32m")

	// ErrUFVKHRPMismatch indicates the viewing key string is valid bech32m
	// but its prefix does not belong to any configured network.
	ErrUFVKHRPMismatch = ErrorKind("ufvk_hrp_mismatch")

	// ErrUFVKTLVInvalid indicates the container items are malformed or more
	// than one Orchard item is present.
	ErrUFVKTLVInvalid = ErrorKind("ufvk_tlv_invalid")

	// ErrUFVKTypecodeUnsupported indicates the container holds no Orchard
	// item.
	ErrUFVKTypecodeUnsupported = ErrorKind("ufvk_typecode_unsupported")

	// ErrUFVKValueLenInvalid indicates the Orchard item is not exactly 96
	// bytes.
	ErrUFVKValueLenInvalid = ErrorKind("ufvk_value_len_invalid")

	// ErrUFVKFVKBytesInvalid indicates the key derivation backend rejected
	// the Orchard full viewing key bytes.
	ErrUFVKFVKBytesInvalid = ErrorKind("ufvk_fvk_bytes_invalid")

	// ErrCountZero indicates a batch requested zero addresses.
	ErrCountZero = ErrorKind("count_zero")

	// ErrCountTooLarge indicates a batch requested more addresses than the
	// configured maximum.
	ErrCountTooLarge = ErrorKind("count_too_large")

	// ErrRangeOverflow indicates a batch extends past the largest diversifier
	// index.
	ErrRangeOverflow = ErrorKind("range_overflow")

	// ErrInternal indicates a failure that well-formed input can not cause.
	ErrInternal = ErrorKind("internal")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address derivation error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
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

// CodeString returns the stable code of the error.
func (e Error) CodeString() string {
	return string(CodeOf(e))
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// CodeOf returns the kind of the passed error.  Errors that do not wrap an
// ErrorKind map to ErrInternal.
func CodeOf(err error) ErrorKind {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return ErrInternal
}
