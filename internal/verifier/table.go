// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package verifier

import "sort"

// Table maps a digest's hex character length to the ordered list of
// candidate algorithms that produce digests of that length. Order is by
// real-world popularity and decides precedence: the first algorithm that
// reproduces a digest wins.
type Table map[int][]string

// DefaultTable returns the built-in length table.
func DefaultTable() Table {
	return Table{
		32:  {"md5", "md4", "md2"},
		40:  {"sha1", "ripemd160"},
		56:  {"sha224"},
		64:  {"sha256", "blake2s", "sm3"},
		96:  {"sha384"},
		128: {"sha512", "blake2b", "whirlpool"},
	}
}

// Extend returns a copy of the table with the extension rows appended.
// Names already present for a length keep their position; new names are
// appended after them, so extensions can add algorithms (e.g. blake3 for
// 64-character digests) without disturbing built-in precedence.
func (t Table) Extend(ext map[int][]string) Table {
	out := make(Table, len(t))
	for length, algos := range t {
		out[length] = append([]string(nil), algos...)
	}
	for length, algos := range ext {
		for _, algo := range algos {
			if !contains(out[length], algo) {
				out[length] = append(out[length], algo)
			}
		}
	}
	return out
}

// Lengths returns the covered digest lengths in ascending order.
func (t Table) Lengths() []int {
	lengths := make([]int, 0, len(t))
	for l := range t {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
