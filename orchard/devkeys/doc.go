// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package devkeys provides a deterministic development implementation of the
orchard.KeyDeriver interface.

Spending keys are derived exactly as ZIP 32 specifies for Orchard: the master
key is the personalized BLAKE2b-512 digest of the seed and every child along
the hardened path m/32'/coin_type'/account' is produced with PRF^expand.

Everything past the spending key is a stand-in.  The full viewing key
components ak, nk and rivk are PRF^expand outputs reduced below the Pallas
moduli, and receivers are keyed BLAKE2b digests of the viewing key and the
diversifier index.  No curve arithmetic is performed, so the receivers are not
spendable on any network.  Serialized viewing keys are still checked for
canonical field encodings so that parsing rejects the same malformed inputs a
production backend would.

The backend is intended for tests, fixtures and tooling.  Binaries serving it
must restrict the accepted networks to those returned by Networks.  Wallets
must plug a real Orchard implementation into the orchard.KeyDeriver interface.
*/
package devkeys
