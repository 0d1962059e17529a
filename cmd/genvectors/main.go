// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command genvectors prints the conformance fixture: the unified full viewing
// key derived from a fixed seed and the unified addresses at its first
// diversifier indices.  The keys come from the development backend, so the
// addresses are test data and must never receive funds.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/junocash/junoaddr/addrgen"
	"github.com/junocash/junoaddr/netparams"
	"github.com/junocash/junoaddr/orchard/devkeys"
)

// vectorsVersion is the version of the fixture format.
const vectorsVersion = 1

// defaultSeed is the seed the published fixture is generated from.
var defaultSeed = bytes.Repeat([]byte{0x07}, 64)

type config struct {
	Net     string `long:"net" description:"Network to generate vectors for {mainnet, testnet, regnet}"`
	SeedHex string `long:"seed" description:"Hex-encoded seed (defaults to 64 bytes of 0x07)"`
	Account uint32 `long:"account" description:"ZIP 32 account index"`
	Count   uint32 `long:"count" description:"Number of addresses to derive"`
}

// vectors is the fixture written to standard output.
type vectors struct {
	Version   int      `json:"version"`
	UFVK      string   `json:"ufvk"`
	Addresses []string `json:"addresses"`
}

// generate derives the fixture described by cfg.
func generate(cfg *config) (*vectors, error) {
	net, ok := netparams.ByName(cfg.Net)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", cfg.Net)
	}
	seed := defaultSeed
	if cfg.SeedHex != "" {
		var err error
		seed, err = hex.DecodeString(cfg.SeedHex)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
	}

	keys := devkeys.New()
	sk, err := keys.SpendingKeyFromSeed(seed, net.CoinType, cfg.Account)
	if err != nil {
		return nil, err
	}
	fvk, err := keys.FullViewingKey(sk)
	if err != nil {
		return nil, err
	}
	ufvk, err := addrgen.EncodeViewingKey(net, fvk)
	if err != nil {
		return nil, err
	}

	d, err := addrgen.New(&addrgen.Config{
		Keys:          keys,
		Networks:      []*netparams.Params{net},
		MaxBatchCount: cfg.Count,
	})
	if err != nil {
		return nil, err
	}
	addrs, err := d.Batch(ufvk, 0, cfg.Count)
	if err != nil {
		return nil, err
	}
	return &vectors{Version: vectorsVersion, UFVK: ufvk, Addresses: addrs}, nil
}

// write writes the fixture as indented JSON.
func write(w io.Writer, v *vectors) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func main() {
	cfg := config{
		Net:   "mainnet",
		Count: 100,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	v, err := generate(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to generate vectors: %v\n", err)
		os.Exit(1)
	}
	if err := write(os.Stdout, v); err != nil {
		fmt.Fprintf(os.Stderr, "unable to write vectors: %v\n", err)
		os.Exit(1)
	}
}
