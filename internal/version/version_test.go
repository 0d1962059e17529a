// Copyright (c) 2021 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"strings"
	"testing"
)

// TestSemVerParsing ensures parsing a semantic version string works as
// expected.
func TestSemVerParsing(t *testing.T) {
	tests := []struct {
		ver     string // semantic version string to parse
		want    semVer // expected components
		invalid bool   // expected error
	}{
		{ver: "0.0.4", want: semVer{patch: 4}},
		{ver: "10.20.30", want: semVer{major: 10, minor: 20, patch: 30}},
		{ver: "1.1.2-prerelease+meta", want: semVer{major: 1, minor: 1,
			patch: 2, pre: "prerelease", build: "meta"}},
		{ver: "1.0.0-alpha.beta.1", want: semVer{major: 1,
			pre: "alpha.beta.1"}},
		{ver: "1.0.0-rc.1+build.1", want: semVer{major: 1, pre: "rc.1",
			build: "build.1"}},
		{ver: "1.2.3----RC-SNAPSHOT.12.9.1--.12+788", want: semVer{major: 1,
			minor: 2, patch: 3, pre: "---RC-SNAPSHOT.12.9.1--.12",
			build: "788"}},
		{ver: "0.1.0-pre", want: semVer{minor: 1, pre: "pre"}},
		{ver: "1", invalid: true},
		{ver: "1.2", invalid: true},
		{ver: "1.2.3-0123", invalid: true},
		{ver: "01.1.1", invalid: true},
		{ver: "1.2.3.DEV", invalid: true},
		{ver: "1.2-SNAPSHOT", invalid: true},
		{ver: "1.2.3+meta!", invalid: true},
		{ver: "99999999999999999999999.999999999999999999.99999999999999999",
			invalid: true},
	}

	for _, test := range tests {
		v, err := parseSemVer(test.ver)
		if test.invalid {
			if err == nil {
				t.Errorf("%q: expected error", test.ver)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.ver, err)
			continue
		}
		if *v != test.want {
			t.Errorf("%q: mismatched components -- got %+v, want %+v",
				test.ver, *v, test.want)
		}
	}
}

// TestNormalizeString ensures characters outside the semantic alphabet are
// removed.
func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "abc123"},
		{"a b!c@1#2$3", "abc123"},
		{"release.local-1", "release.local-1"},
		{"", ""},
	}

	for _, test := range tests {
		if got := NormalizeString(test.in); got != test.want {
			t.Errorf("NormalizeString(%q): got %q, want %q", test.in, got,
				test.want)
		}
	}
}

// TestString ensures the reported version parses and matches the exported
// components.
func TestString(t *testing.T) {
	v, err := parseSemVer(String())
	if err != nil {
		t.Fatalf("version %q does not parse: %v", String(), err)
	}
	if v.major != Major || v.minor != Minor || v.patch != Patch ||
		v.pre != PreRelease || v.build != BuildMetadata {

		t.Fatalf("version %q disagrees with its components", String())
	}
	if !strings.HasPrefix(String(), "0.1.0") {
		t.Fatalf("unexpected version %q", String())
	}
}
