// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package wordlist manages the filesystem-backed wordlist store and the
// candidate word streams read from it. Wordlists are plain text files,
// optionally gzip-compressed, with one candidate word per line.
package wordlist

import (
	"os"
	"sort"
	"strings"

	"github.com/mmark5466-dev/pass-fail/internal/model"
)

// Store locates wordlists under a single directory. Existence of a
// wordlist is validated when it is opened, not when it is selected.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// IsWordlist reports whether a file name has a recognized wordlist
// extension.
func IsWordlist(name string) bool {
	return strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".txt.gz")
}

// List returns the wordlists present in the store directory, sorted by
// name. A missing directory yields an empty listing, not an error.
func (s *Store) List() ([]model.WordlistInfo, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var lists []model.WordlistInfo
	for _, e := range entries {
		if e.IsDir() || !IsWordlist(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		lists = append(lists, model.WordlistInfo{Name: e.Name(), Size: info.Size()})
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].Name < lists[j].Name })
	return lists, nil
}
