// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrgen

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/junocash/junoaddr/netparams"
	"github.com/junocash/junoaddr/orchard"
	"github.com/junocash/junoaddr/unified"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxBatchCount is the maximum number of addresses a single
	// batch may request unless configured otherwise.
	DefaultMaxBatchCount = 100000

	// MaxIndex is the largest diversifier index.
	MaxIndex = math.MaxUint32
)

// Config is a descriptor containing the address deriver configuration.
type Config struct {
	// Keys is the Orchard key derivation backend.  It must be set.
	Keys orchard.KeyDeriver

	// Networks lists the networks whose viewing keys are accepted.  All
	// standard networks are used when it is empty.
	Networks []*netparams.Params

	// MaxBatchCount is the maximum number of addresses a batch may request.
	// DefaultMaxBatchCount is used when it is zero.
	MaxBatchCount uint32

	// Workers is the number of goroutines used to derive the addresses of a
	// batch.  Batches are derived sequentially when it is less than two.  A
	// panic in a worker is reported as ErrInternal.
	Workers int
}

// ViewingKey is a decoded unified full viewing key along with the network it
// was encoded for.
type ViewingKey struct {
	Net *netparams.Params
	Key orchard.FullViewingKey
}

// Deriver derives unified addresses from unified full viewing keys.  It is
// immutable once created and safe for concurrent use.
type Deriver struct {
	cfg  Config
	hrps []string
}

// New returns a new address deriver for the provided configuration.
func New(cfg *Config) (*Deriver, error) {
	if cfg.Keys == nil {
		return nil, errors.New("no key derivation backend specified")
	}
	d := &Deriver{cfg: *cfg}
	if len(d.cfg.Networks) == 0 {
		d.cfg.Networks = netparams.All()
	}
	if d.cfg.MaxBatchCount == 0 {
		d.cfg.MaxBatchCount = DefaultMaxBatchCount
	}
	seen := make(map[string]struct{}, len(d.cfg.Networks))
	for _, net := range d.cfg.Networks {
		hrp := strings.ToLower(net.ViewingKeyHRP)
		if _, ok := seen[hrp]; ok {
			return nil, fmt.Errorf("duplicate viewing key prefix %q", hrp)
		}
		if len(net.ViewingKeyHRP) > unified.PaddingLen ||
			len(net.AddressHRP) > unified.PaddingLen {

			return nil, fmt.Errorf("network %s prefixes must not exceed %d "+
				"bytes", net.Name, unified.PaddingLen)
		}
		seen[hrp] = struct{}{}
		d.hrps = append(d.hrps, hrp)
	}
	return d, nil
}

// MaxBatchCount returns the maximum number of addresses a batch may request.
func (d *Deriver) MaxBatchCount() uint32 {
	return d.cfg.MaxBatchCount
}

// containerError converts a container decoding error to the matching address
// derivation error.
func containerError(err error) error {
	var kind ErrorKind
	switch {
	case errors.Is(err, unified.ErrHRPMismatch):
		kind = ErrUFVKHRPMismatch

	case errors.Is(err, unified.ErrInvalidEncoding),
		errors.Is(err, unified.ErrInvalidPayloadLength),
		errors.Is(err, unified.ErrInvalidPadding):
		kind = ErrUFVKInvalidBech32m

	case errors.Is(err, unified.ErrTruncated),
		errors.Is(err, unified.ErrNonCanonical),
		errors.Is(err, unified.ErrNoItems),
		errors.Is(err, unified.ErrDuplicateItem):
		kind = ErrUFVKTLVInvalid

	case errors.Is(err, unified.ErrItemNotFound):
		kind = ErrUFVKTypecodeUnsupported

	default:
		kind = ErrInternal
	}
	return makeError(kind, err.Error())
}

// ParseViewingKey decodes an encoded unified full viewing key.  Surrounding
// whitespace is ignored.
func (d *Deriver) ParseViewingKey(ufvk string) (*ViewingKey, error) {
	ufvk = strings.TrimSpace(ufvk)
	if ufvk == "" {
		return nil, makeError(ErrUFVKEmpty, "viewing key is empty")
	}

	hrp, items, err := unified.Decode(ufvk, d.hrps)
	if err != nil {
		return nil, containerError(err)
	}
	net, ok := netparams.Find(d.cfg.Networks, hrp)
	if !ok {
		str := fmt.Sprintf("no network for matched prefix %q", hrp)
		return nil, makeError(ErrInternal, str)
	}
	value, err := unified.FindSingle(items, unified.TypecodeOrchard)
	if err != nil {
		return nil, containerError(err)
	}
	if len(value) != orchard.FullViewingKeySize {
		str := fmt.Sprintf("orchard item is %d bytes instead of %d",
			len(value), orchard.FullViewingKeySize)
		return nil, makeError(ErrUFVKValueLenInvalid, str)
	}

	var b [orchard.FullViewingKeySize]byte
	copy(b[:], value)
	fvk, err := d.cfg.Keys.ParseFullViewingKey(&b)
	if err != nil {
		str := fmt.Sprintf("invalid orchard full viewing key: %v", err)
		return nil, makeError(ErrUFVKFVKBytesInvalid, str)
	}

	log.Tracef("Decoded %s viewing key with %d items", net.Name, len(items))
	return &ViewingKey{Net: net, Key: fvk}, nil
}

// Address returns the unified address of the external receiver at index.
func (vk *ViewingKey) Address(index uint32) (string, error) {
	raw, err := vk.Key.AddressAt(index, orchard.ScopeExternal)
	if err != nil {
		str := fmt.Sprintf("unable to derive receiver %d: %v", index, err)
		return "", makeError(ErrInternal, str)
	}
	addr, err := unified.EncodeSingle(vk.Net.AddressHRP,
		unified.TypecodeOrchard, raw[:])
	if err != nil {
		str := fmt.Sprintf("unable to encode address %d: %v", index, err)
		return "", makeError(ErrInternal, str)
	}
	return addr, nil
}

// Derive returns the unified address at the diversifier index for the
// encoded unified full viewing key.
func (d *Deriver) Derive(ufvk string, index uint32) (string, error) {
	vk, err := d.ParseViewingKey(ufvk)
	if err != nil {
		return "", err
	}
	addr, err := vk.Address(index)
	if err != nil {
		return "", err
	}
	log.Debugf("Derived %s address at index %d", vk.Net.Name, index)
	return addr, nil
}

// checkRange ensures a batch request is acceptable.
func (d *Deriver) checkRange(start, count uint32) error {
	if count == 0 {
		return makeError(ErrCountZero, "count must be at least 1")
	}
	if count > d.cfg.MaxBatchCount {
		str := fmt.Sprintf("count %d exceeds the maximum of %d", count,
			d.cfg.MaxBatchCount)
		return makeError(ErrCountTooLarge, str)
	}
	if uint64(start)+uint64(count) > MaxIndex+1 {
		str := fmt.Sprintf("range starting at %d with %d addresses exceeds "+
			"the maximum index %d", start, count, uint32(MaxIndex))
		return makeError(ErrRangeOverflow, str)
	}
	return nil
}

// Batch returns count consecutive unified addresses starting at the
// diversifier index start for the encoded unified full viewing key.  The
// addresses are ordered by index.
func (d *Deriver) Batch(ufvk string, start, count uint32) ([]string, error) {
	if err := d.checkRange(start, count); err != nil {
		return nil, err
	}
	vk, err := d.ParseViewingKey(ufvk)
	if err != nil {
		return nil, err
	}

	addrs := make([]string, count)
	if d.cfg.Workers < 2 || count == 1 {
		for i := range addrs {
			addrs[i], err = vk.Address(start + uint32(i))
			if err != nil {
				return nil, err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(d.cfg.Workers)
		for i := range addrs {
			i := i
			g.Go(func() (err error) {
				// A worker panic is reported as an internal error.
				defer func() {
					if r := recover(); r != nil {
						str := fmt.Sprintf("panic deriving address %d: %v",
							start+uint32(i), r)
						err = makeError(ErrInternal, str)
					}
				}()
				addr, err := vk.Address(start + uint32(i))
				if err != nil {
					return err
				}
				addrs[i] = addr
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	log.Debugf("Derived %d %s addresses starting at index %d", count,
		vk.Net.Name, start)
	return addrs, nil
}

// EncodeViewingKey encodes a full viewing key as a unified full viewing key
// for the provided network.
func EncodeViewingKey(net *netparams.Params, fvk orchard.FullViewingKey) (string, error) {
	b := fvk.Bytes()
	ufvk, err := unified.EncodeSingle(net.ViewingKeyHRP,
		unified.TypecodeOrchard, b[:])
	if err != nil {
		str := fmt.Sprintf("unable to encode viewing key: %v", err)
		return "", makeError(ErrInternal, str)
	}
	return ufvk, nil
}
