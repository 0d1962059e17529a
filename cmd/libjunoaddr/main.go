// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command libjunoaddr builds the C shared library exposing address derivation
// to foreign callers.
//
//	go build -buildmode=c-shared -o libjunoaddr.so ./cmd/libjunoaddr
//
// Every returned string is owned by the caller and must be released with
// juno_addrgen_string_free exactly once.  The library is built with the
// development Orchard key backend, so only test and regression network keys
// are accepted and main network keys report ufvk_hrp_mismatch.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/junocash/junoaddr/addrgen"
	"github.com/junocash/junoaddr/ffi"
	"github.com/junocash/junoaddr/orchard/devkeys"
)

var (
	deriver  ffi.Deriver
	registry = ffi.NewRegistry()
)

func init() {
	d, err := addrgen.New(&addrgen.Config{
		Keys:     devkeys.New(),
		Networks: devkeys.Networks(),
	})
	if err != nil {
		panic(err)
	}
	deriver = d
}

//export juno_addrgen_derive_json
func juno_addrgen_derive_json(ufvk *C.char, index C.uint32_t) *C.char {
	resp := ffi.DeriveJSON(deriver, goString(ufvk), uint32(index))
	return newCString(string(resp))
}

//export juno_addrgen_batch_json
func juno_addrgen_batch_json(ufvk *C.char, start, count C.uint32_t) *C.char {
	resp := ffi.BatchJSON(deriver, goString(ufvk), uint32(start),
		uint32(count))
	return newCString(string(resp))
}

//export juno_addrgen_string_free
func juno_addrgen_string_free(s *C.char) {
	releaseCString(s)
}

func main() {}
