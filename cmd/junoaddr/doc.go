// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
junoaddr derives Juno Cash unified addresses from a unified full viewing key
without using the network.

Usage:

	junoaddr [OPTIONS] derive --ufvk <jview*1...> --index <n> [--json]
	junoaddr [OPTIONS] batch --ufvk <jview*1...> --start <n> --count <k> [--json]

The viewing key may instead be read with --ufvk-file, --ufvk-env or
--ufvk-prompt.  Exactly one source must be given.

Addresses are written to standard output, one per line, or as a single JSON
object with --json.  Failures are reported with their stable code.  The exit
status is 0 on success, 1 when derivation fails and 2 when the invocation is
invalid.

Run junoaddr --help for the global options and junoaddr --printsampleconfig
for a commented configuration file.
*/
package main
