// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package verifier

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDigestsLiteral(t *testing.T) {
	digests, fromFile, err := loadDigests("  5F4DCC3B5AA765D61D8327DEB882CF99 ")
	if err != nil {
		t.Fatalf("loadDigests: %v", err)
	}
	if fromFile {
		t.Error("literal input flagged as file")
	}
	if len(digests) != 1 || digests[0] != "5f4dcc3b5aa765d61d8327deb882cf99" {
		t.Errorf("unexpected digests: %v", digests)
	}
}

func TestLoadDigestsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digests.txt")
	content := "ABCDEF\n\n  123456  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	digests, fromFile, err := loadDigests(path)
	if err != nil {
		t.Fatalf("loadDigests: %v", err)
	}
	if !fromFile {
		t.Error("file input not flagged as file")
	}
	want := []string{"abcdef", "123456"}
	if len(digests) != 2 || digests[0] != want[0] || digests[1] != want[1] {
		t.Errorf("unexpected digests: %v", digests)
	}
}

func TestLoadDigestsMissingFile(t *testing.T) {
	_, _, err := loadDigests(filepath.Join(t.TempDir(), "ghost.txt"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}
