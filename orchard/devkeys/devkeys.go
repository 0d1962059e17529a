// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package devkeys

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/dchest/blake2b"
	"github.com/decred/dcrd/math/uint256"
	"github.com/junocash/junoaddr/netparams"
	"github.com/junocash/junoaddr/orchard"
)

const (
	// MinSeedLen is the minimum number of bytes accepted as a seed.
	MinSeedLen = 32

	// MaxSeedLen is the maximum number of bytes accepted as a seed.
	MaxSeedLen = 252

	// HardenedKeyStart is the index at which hardened child keys begin.
	HardenedKeyStart = 0x80000000 // 2^31

	// zip32Purpose is the purpose field of the account derivation path.
	zip32Purpose = 32

	// componentSize is the size of each serialized viewing key component.
	componentSize = 32
)

// Domain separators for PRF^expand.
const (
	domainChild        = 0x81
	domainAsk          = 0x06
	domainNk           = 0x07
	domainRivk         = 0x08
	domainDk           = 0x82
	domainRivkInternal = 0x83
)

var (
	personMaster      = []byte("ZcashIP32Orchard")
	personExpand      = []byte("Zcash_ExpandSeed")
	personDiversifier = []byte("Juno_Diversifier")
	personIvk         = []byte("Juno_SimIvk_____")
	personPkd         = []byte("Juno_SimPkd_____")
)

var (
	// pallasP is the order of the Pallas base field.
	pallasP = hexToUint256("40000000000000000000000000000000224698fc094cf91b992d30ed00000001")

	// pallasQ is the order of the Pallas scalar field.
	pallasQ = hexToUint256("40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001")
)

// hexToUint256 converts the passed big-endian hex string into a uint256 and
// will panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only (and
// must only) be called with hard-coded values.
func hexToUint256(s string) *uint256.Uint256 {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("invalid hex in source file: " + s)
	}
	var arr [32]byte
	copy(arr[:], b)
	return new(uint256.Uint256).SetBytes(&arr)
}

// digest returns the personalized BLAKE2b digest of size bytes over the
// concatenation of parts, optionally keyed.
func digest(size uint8, key, person []byte, parts ...[]byte) []byte {
	h, err := blake2b.New(&blake2b.Config{
		Size:   size,
		Key:    key,
		Person: person,
	})
	if err != nil {
		// The configurations are fixed and always valid.
		panic(fmt.Sprintf("blake2b config: %v", err))
	}
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// prfExpand is PRF^expand(sk, t) from the Zcash protocol specification.
func prfExpand(sk []byte, t ...[]byte) []byte {
	parts := make([][]byte, 0, len(t)+1)
	parts = append(parts, sk)
	parts = append(parts, t...)
	return digest(blake2b.Size, nil, personExpand, parts...)
}

// reduce clears the top two bits of a little-endian 32 byte value so the
// result is below both Pallas moduli.
func reduce(b []byte) [componentSize]byte {
	var out [componentSize]byte
	copy(out[:], b[:componentSize])
	out[componentSize-1] &= 0x3f
	return out
}

// leUint32 returns the little-endian encoding of v.
func leUint32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// Networks returns the networks the backend may serve.  Main network keys are
// never accepted since the receivers it produces are not spendable.
func Networks() []*netparams.Params {
	return []*netparams.Params{netparams.TestNetParams(),
		netparams.RegNetParams()}
}

// Deriver is the development key derivation backend.  The zero value is ready
// to use and it is safe for concurrent use.
type Deriver struct{}

// New returns a development key derivation backend.
func New() *Deriver {
	return &Deriver{}
}

// Ensure Deriver implements the orchard.KeyDeriver interface.
var _ orchard.KeyDeriver = (*Deriver)(nil)

// SpendingKeyFromSeed derives the account spending key at
// m/32'/coinType'/account' following the ZIP 32 Orchard derivation.
func (d *Deriver) SpendingKeyFromSeed(seed []byte, coinType, account uint32) (*orchard.SpendingKey, error) {
	if len(seed) < MinSeedLen || len(seed) > MaxSeedLen {
		str := fmt.Sprintf("seed length must be between %d and %d bytes, "+
			"got %d", MinSeedLen, MaxSeedLen, len(seed))
		return nil, orchard.MakeError(orchard.ErrInvalidSeedLength, str)
	}
	if coinType >= HardenedKeyStart {
		str := fmt.Sprintf("coin type %d is not below %d", coinType,
			uint32(HardenedKeyStart))
		return nil, orchard.MakeError(orchard.ErrInvalidChildIndex, str)
	}
	if account >= HardenedKeyStart {
		str := fmt.Sprintf("account %d is not below %d", account,
			uint32(HardenedKeyStart))
		return nil, orchard.MakeError(orchard.ErrInvalidChildIndex, str)
	}

	i := digest(blake2b.Size, nil, personMaster, seed)
	sk, chainCode := i[:32], i[32:]
	for _, child := range [3]uint32{zip32Purpose, coinType, account} {
		idx := leUint32(child | HardenedKeyStart)
		i = prfExpand(chainCode, []byte{domainChild}, sk, idx)
		sk, chainCode = i[:32], i[32:]
	}

	var out orchard.SpendingKey
	copy(out[:], sk)
	return &out, nil
}

// FullViewingKey derives the full viewing key of the passed spending key.
func (d *Deriver) FullViewingKey(sk *orchard.SpendingKey) (orchard.FullViewingKey, error) {
	if sk == nil {
		return nil, orchard.MakeError(orchard.ErrInvalidSpendingKey,
			"nil spending key")
	}
	fvk := &fullViewingKey{
		ak:   reduce(prfExpand(sk[:], []byte{domainAsk})),
		nk:   reduce(prfExpand(sk[:], []byte{domainNk})),
		rivk: reduce(prfExpand(sk[:], []byte{domainRivk})),
	}

	// A zero ak has no valid encoding.  The odds of hitting it are
	// negligible, but the spending key is unusable when it happens.
	if fvk.ak == [componentSize]byte{} {
		return nil, orchard.MakeError(orchard.ErrInvalidSpendingKey,
			"spending key yields the identity ak")
	}
	return fvk, nil
}

// ParseFullViewingKey parses a serialized full viewing key.  Each component
// must be a canonical little-endian field element: ak and nk below the base
// field order with ak non-zero and its sign bit clear, and rivk below the
// scalar field order.
func (d *Deriver) ParseFullViewingKey(b *[orchard.FullViewingKeySize]byte) (orchard.FullViewingKey, error) {
	var fvk fullViewingKey
	copy(fvk.ak[:], b[0:32])
	copy(fvk.nk[:], b[32:64])
	copy(fvk.rivk[:], b[64:96])

	if fvk.ak[componentSize-1]&0x80 != 0 {
		return nil, orchard.MakeError(orchard.ErrInvalidFullViewingKey,
			"ak has its sign bit set")
	}
	var n uint256.Uint256
	switch {
	case n.SetBytesLE(&fvk.ak).IsZero():
		return nil, orchard.MakeError(orchard.ErrInvalidFullViewingKey,
			"ak is zero")
	case !n.Lt(pallasP):
		return nil, orchard.MakeError(orchard.ErrInvalidFullViewingKey,
			"ak is not a canonical field element")
	case !n.SetBytesLE(&fvk.nk).Lt(pallasP):
		return nil, orchard.MakeError(orchard.ErrInvalidFullViewingKey,
			"nk is not a canonical field element")
	case !n.SetBytesLE(&fvk.rivk).Lt(pallasQ):
		return nil, orchard.MakeError(orchard.ErrInvalidFullViewingKey,
			"rivk is not a canonical scalar")
	}
	return &fvk, nil
}

// fullViewingKey is the development full viewing key.
type fullViewingKey struct {
	ak   [componentSize]byte
	nk   [componentSize]byte
	rivk [componentSize]byte
}

// Bytes returns the serialized key ak || nk || rivk.
func (k *fullViewingKey) Bytes() [orchard.FullViewingKeySize]byte {
	var b [orchard.FullViewingKeySize]byte
	copy(b[0:32], k.ak[:])
	copy(b[32:64], k.nk[:])
	copy(b[64:96], k.rivk[:])
	return b
}

// scopedRivk returns the commitment randomness for scope.  Internal keys use
// the ZIP 32 derived rivk_internal.
func (k *fullViewingKey) scopedRivk(scope orchard.Scope) ([componentSize]byte, error) {
	switch scope {
	case orchard.ScopeExternal:
		return k.rivk, nil
	case orchard.ScopeInternal:
		r := prfExpand(k.rivk[:], []byte{domainRivkInternal}, k.ak[:], k.nk[:])
		return reduce(r), nil
	}
	str := fmt.Sprintf("unsupported address scope %v", scope)
	return [componentSize]byte{}, orchard.MakeError(orchard.ErrInvalidScope, str)
}

// AddressAt returns the receiver at the diversifier index within scope.  The
// diversifier is a keyed digest of the index under the scope's diversifier
// key and pk_d commits to the incoming viewing key and the diversifier.
func (k *fullViewingKey) AddressAt(index uint32, scope orchard.Scope) (orchard.RawAddress, error) {
	var addr orchard.RawAddress
	rivk, err := k.scopedRivk(scope)
	if err != nil {
		return addr, err
	}

	dk := prfExpand(rivk[:], []byte{domainDk}, k.ak[:], k.nk[:])[:32]
	var di [orchard.DiversifierSize]byte
	binary.LittleEndian.PutUint32(di[:], index)
	d := digest(orchard.DiversifierSize, dk, personDiversifier, di[:])

	ivk := reduce(digest(32, nil, personIvk, k.ak[:], k.nk[:], rivk[:]))
	pkd := reduce(digest(32, nil, personPkd, ivk[:], d))

	copy(addr[:orchard.DiversifierSize], d)
	copy(addr[orchard.DiversifierSize:], pkd[:])
	return addr, nil
}
