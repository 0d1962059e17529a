// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ffi implements the foreign-function boundary of the address deriver.

DeriveJSON and BatchJSON accept the viewing key as an optional string, as it
arrives from a C caller, and always return a JSON response.  They never panic:
any runtime fault raised while serving a request is recovered and reported as
the internal error code.

Single derivation responses:

	{"status":"ok","address":"j1..."}
	{"status":"err","error":"<code>"}

Batch responses:

	{"status":"ok","start":0,"count":2,"addresses":["j1...","j1..."]}
	{"status":"err","error":"<code>"}

The codes are the addrgen.ErrorKind values.

Registry tracks the ownership of buffers handed to foreign callers so each one
is released exactly once.  Client performs the inverse translation for Go
callers that consume the JSON responses.
*/
package ffi
