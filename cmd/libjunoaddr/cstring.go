// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/junocash/junoaddr/ffi"
)

// newCString copies s into C memory and tracks its ownership.  The result
// must be released with releaseCString.
func newCString(s string) *C.char {
	p := C.CString(s)
	registry.Track(ffi.Handle(unsafe.Pointer(p)))
	return p
}

// releaseCString frees a string returned by newCString.  Null, untracked and
// already released pointers are ignored.
func releaseCString(s *C.char) {
	if registry.Release(ffi.Handle(unsafe.Pointer(s))) {
		C.free(unsafe.Pointer(s))
	}
}

// readCString copies a NUL-terminated C string into Go memory.
func readCString(s *C.char) string {
	return C.GoString(s)
}

// goString converts an optional C string to an optional Go string.
func goString(s *C.char) *string {
	if s == nil {
		return nil
	}
	str := readCString(s)
	return &str
}
