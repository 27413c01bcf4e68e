// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package hashalg provides the digest algorithm provider for the
// verification engine. It maps algorithm identifiers to hash.Hash
// constructors and renders digests as lowercase hex strings.
//
// Note: md2 appears in the engine's length table but has no registered
// constructor here, so it surfaces through the engine's
// algorithm-unavailable diagnostic instead.
package hashalg

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"

	"github.com/emmansun/gmsm/sm3"
	"github.com/jzelinskie/whirlpool"
	simd "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
)

// ErrUnknownAlgorithm is returned when an algorithm identifier has no
// registered implementation.
var ErrUnknownAlgorithm = fmt.Errorf("unknown algorithm")

// Provider resolves algorithm identifiers to hasher instances. The engine
// asks for one hasher per algorithm pass and reuses it via Reset, so
// implementations must return a fresh hash.Hash from every New call.
type Provider interface {
	// Supported reports whether the identifier has an implementation.
	Supported(name string) bool
	// New returns a fresh hasher for the identifier.
	New(name string) (hash.Hash, error)
	// Names returns all supported identifiers, sorted.
	Names() []string
}

// constructors is the static algorithm registry, read-only after init.
var constructors = map[string]func() hash.Hash{
	"md5":       md5.New,
	"md4":       md4.New,
	"sha1":      sha1.New,
	"ripemd160": ripemd160.New,
	"sha224":    sha256.New224,
	"sha256":    simd.New,
	"blake2s":   func() hash.Hash { h, _ := blake2s.New256(nil); return h },
	"sm3":       sm3.New,
	"sha384":    sha512.New384,
	"sha512":    sha512.New,
	"blake2b":   func() hash.Hash { h, _ := blake2b.New512(nil); return h },
	"whirlpool": whirlpool.New,
	"blake3":    func() hash.Hash { return blake3.New() },
}

// registry is the default Provider backed by the constructors table.
type registry struct{}

// Default returns the process-wide digest algorithm provider.
func Default() Provider {
	return registry{}
}

func (registry) Supported(name string) bool {
	_, ok := constructors[name]
	return ok
}

func (registry) New(name string) (hash.Hash, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return ctor(), nil
}

func (registry) Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum computes the lowercase hex digest of word under the named algorithm
// using the default provider.
func Sum(name, word string) (string, error) {
	h, err := Default().New(name)
	if err != nil {
		return "", err
	}
	h.Write([]byte(word))
	return hex.EncodeToString(h.Sum(nil)), nil
}
