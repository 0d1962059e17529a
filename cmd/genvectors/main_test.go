// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/junocash/junoaddr/addrgen"
	"github.com/junocash/junoaddr/orchard/devkeys"
)

// TestGenerate ensures the fixture is deterministic and consistent with the
// deriver.
func TestGenerate(t *testing.T) {
	cfg := config{Net: "mainnet", Count: 100}
	v, err := generate(&cfg)
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	if v.Version != 1 || len(v.Addresses) != 100 {
		t.Fatalf("unexpected fixture: version %d with %d addresses",
			v.Version, len(v.Addresses))
	}
	if !strings.HasPrefix(v.UFVK, "jview1") {
		t.Fatalf("unexpected viewing key %s", v.UFVK)
	}

	again, err := generate(&cfg)
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	if again.UFVK != v.UFVK || strings.Join(again.Addresses, ",") !=
		strings.Join(v.Addresses, ",") {

		t.Fatal("fixture is not deterministic")
	}

	d, err := addrgen.New(&addrgen.Config{Keys: devkeys.New()})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	for _, index := range []uint32{0, 1, 99} {
		addr, err := d.Derive(v.UFVK, index)
		if err != nil {
			t.Fatalf("Derive: unexpected error: %v", err)
		}
		if addr != v.Addresses[index] {
			t.Fatalf("address %d mismatch -- got %s, want %s", index, addr,
				v.Addresses[index])
		}
	}

	// The seed is a parameter of the fixture.
	cfg.SeedHex = strings.Repeat("09", 64)
	other, err := generate(&cfg)
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	if other.UFVK == v.UFVK {
		t.Fatal("different seeds produced the same viewing key")
	}
}

// TestGenerateKnownAnswers ensures the published fixture stays stable.
func TestGenerateKnownAnswers(t *testing.T) {
	const (
		wantUFVK = "jview1kaahk2m32xmljl6v7whkh5av02j98p3xxazr563acwppatyhx" +
			"stzpg0r3a7xmzp3avjf9afhe4s7ekdvr4aqtp53pnnyhy52ysg0lrxgy4wdcc" +
			"n3yjzt7w9mv7mvs9xxvn22ug54x5gxjefs4xkfvcmknglhqf4v76axsq2etgw" +
			"5grggkvn6zfgf2dkv7"
		wantAddr0 = "j1wz9anr7vg9r5zwpl3lp9pwf22f0s77pc5pmydl7ew6vfycaz0xryjcu4" +
			"4thndn5jd3f55rxa9cftjdyevxy9nz4hj99zj7dv2cyryecv"
		wantAddr1 = "j1zm663nprwnhvvln30yp7fmel85ehjvsdxhzpwqm6qfwkeg8htx3k0yxq" +
			"rkrx8mzuu2sxcv0pnz06a92l6z2e7zavandvjv50gq8ezaxq"
		wantAddr99 = "j1le69ffrc5t2gql85y82krth827gkn7xvmt3g7lv3amdx7kuv2e7j34v" +
			"f706hwmupqku7y8dkqe9et2ujxlkcgx2yxcwlcnkqacpzawu3"
	)

	v, err := generate(&config{Net: "mainnet", Count: 100})
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	if v.UFVK != wantUFVK {
		t.Fatalf("mismatched viewing key -- got %s, want %s", v.UFVK, wantUFVK)
	}
	tests := []struct {
		index int
		want  string
	}{
		{0, wantAddr0},
		{1, wantAddr1},
		{99, wantAddr99},
	}
	for _, test := range tests {
		if got := v.Addresses[test.index]; got != test.want {
			t.Errorf("address %d: mismatched address -- got %s, want %s",
				test.index, got, test.want)
		}
	}

	// The test network fixture uses coin type 1.
	v, err = generate(&config{Net: "testnet", Count: 1})
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	wantTestAddr0 := "jtest1m8e8kv5ha7q5tsj3xqgxv5gedj3msa8jqy37la4wv40msckckm4" +
		"ym2u5a9zp7f383ded6e7ayj02yjwemufsq548pusq63q0vc99q40m"
	if v.Addresses[0] != wantTestAddr0 {
		t.Fatalf("mismatched test network address -- got %s, want %s",
			v.Addresses[0], wantTestAddr0)
	}
}

// TestGenerateErrors ensures invalid parameters are rejected.
func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
	}{
		{"unknown network", config{Net: "moonnet", Count: 1}},
		{"invalid seed hex", config{Net: "mainnet", SeedHex: "zz", Count: 1}},
		{"short seed", config{Net: "mainnet", SeedHex: "0707", Count: 1}},
		{"zero count", config{Net: "mainnet", Count: 0}},
	}

	for _, test := range tests {
		if _, err := generate(&test.cfg); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

// TestWrite ensures the fixture is written as JSON with the documented keys.
func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := write(&buf, &vectors{Version: 1, UFVK: "jview1x",
		Addresses: []string{"j1a", "j1b"}})
	if err != nil {
		t.Fatalf("write: unexpected error: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["version"] != float64(1) || got["ufvk"] != "jview1x" {
		t.Fatalf("unexpected json: %v", got)
	}
	if !strings.HasPrefix(buf.String(), "{\n  \"version\": 1,") {
		t.Fatalf("unexpected layout: %q", buf.String())
	}
}
