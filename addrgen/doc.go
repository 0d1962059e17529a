// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package addrgen derives Juno Cash unified addresses from unified full viewing
keys.

A Deriver decodes an encoded viewing key against the viewing key prefixes of
every configured network, extracts its single Orchard item, hands the key bytes
to an orchard.KeyDeriver and encodes the external receiver at each requested
diversifier index as a single-item unified address under the address prefix of
the network the key belongs to.

# Errors

Every failure wraps one of the ErrorKind constants.  Their string values are
stable codes which the ffi package reports verbatim, so callers may rely on
them across versions.  CodeOf maps an arbitrary error to its code.

Batch requests are validated before the viewing key is decoded, so a request
with a zero count reports ErrCountZero even when the key is empty.  A batch
either produces every requested address in index order or fails as a whole.
*/
package addrgen
