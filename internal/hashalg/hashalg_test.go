// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package hashalg

import (
	"errors"
	"testing"
)

func TestSumKnownVectors(t *testing.T) {
	cases := []struct {
		algo, word, want string
	}{
		{"md5", "password", "5f4dcc3b5aa765d61d8327deb882cf99"},
		{"sha1", "password", "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"},
		{"sha256", "password", "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"},
		{"md5", "", "d41d8cd98f00b204e9800998ecf8427e"},
	}
	for _, c := range cases {
		got, err := Sum(c.algo, c.word)
		if err != nil {
			t.Errorf("Sum(%s, %q): %v", c.algo, c.word, err)
			continue
		}
		if got != c.want {
			t.Errorf("Sum(%s, %q) = %q, want %q", c.algo, c.word, got, c.want)
		}
	}
}

func TestDigestLengths(t *testing.T) {
	// Hex digest length per algorithm drives the engine's length table,
	// so the registered implementations must produce these widths.
	widths := map[string]int{
		"md5": 32, "md4": 32,
		"sha1": 40, "ripemd160": 40,
		"sha224": 56,
		"sha256": 64, "blake2s": 64, "sm3": 64, "blake3": 64,
		"sha384": 96,
		"sha512": 128, "blake2b": 128, "whirlpool": 128,
	}
	for algo, want := range widths {
		got, err := Sum(algo, "password")
		if err != nil {
			t.Errorf("Sum(%s): %v", algo, err)
			continue
		}
		if len(got) != want {
			t.Errorf("%s digest width = %d, want %d", algo, len(got), want)
		}
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	p := Default()
	if p.Supported("md2") {
		t.Error("md2 should not be supported")
	}
	if _, err := p.New("md2"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := Sum("nope", "x"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Default().Names()
	if len(names) != len(constructors) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(constructors))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
