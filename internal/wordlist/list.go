// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Entry is one candidate word with its 1-based line number in the source
// file. Blank lines keep their line number but are not emitted as entries.
type Entry struct {
	Line int
	Word string
}

// List is the fully read contents of one wordlist. Total counts every
// line of the source, including blanks, and serves as the progress
// denominator for a pass over this list.
type List struct {
	Name    string
	Total   int
	entries []Entry
}

// Entries returns the non-blank, trimmed candidate words in file order.
func (l *List) Entries() []Entry {
	return l.entries
}

// Open reads the named wordlist from the store. Gzip-compressed lists
// (.txt.gz) are decompressed transparently.
func (s *Store) Open(name string) (*List, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	return read(name, r)
}

// read consumes the source line by line, trimming whitespace and
// skipping blanks, in a single pass.
func read(name string, r io.Reader) (*List, error) {
	l := &List{Name: name}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		l.Total++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		l.entries = append(l.entries, Entry{Line: l.Total, Word: word})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}
