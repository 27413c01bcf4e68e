// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package verifier

import (
	"reflect"
	"testing"
)

func TestDefaultTableOrder(t *testing.T) {
	table := DefaultTable()
	if got := table[32]; !reflect.DeepEqual(got, []string{"md5", "md4", "md2"}) {
		t.Errorf("32-char order = %v", got)
	}
	if got := table[128]; !reflect.DeepEqual(got, []string{"sha512", "blake2b", "whirlpool"}) {
		t.Errorf("128-char order = %v", got)
	}
	if got := table.Lengths(); !reflect.DeepEqual(got, []int{32, 40, 56, 64, 96, 128}) {
		t.Errorf("Lengths() = %v", got)
	}
}

func TestExtendAppendsWithoutReordering(t *testing.T) {
	table := DefaultTable().Extend(map[int][]string{
		64: {"blake3", "sha256"}, // sha256 already present, keeps position
		20: {"crc-ish"},
	})
	if got := table[64]; !reflect.DeepEqual(got, []string{"sha256", "blake2s", "sm3", "blake3"}) {
		t.Errorf("extended 64-char order = %v", got)
	}
	if got := table[20]; !reflect.DeepEqual(got, []string{"crc-ish"}) {
		t.Errorf("new length row = %v", got)
	}
}

func TestExtendDoesNotMutateReceiver(t *testing.T) {
	base := DefaultTable()
	base.Extend(map[int][]string{64: {"blake3"}})
	if got := base[64]; !reflect.DeepEqual(got, []string{"sha256", "blake2s", "sm3"}) {
		t.Errorf("receiver mutated: %v", got)
	}
}
