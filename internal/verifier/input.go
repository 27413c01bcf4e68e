// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package verifier

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInputNotFound is returned when the digest input names a file that
// cannot be opened. This is the only error that aborts a run.
var ErrInputNotFound = errors.New("digest input file not found")

// loadDigests normalizes the digest input. An input ending in a
// recognized list extension is read as a file of newline-separated
// digests; anything else is a single digest literal. Digests are
// lowercased and blank lines skipped. No hex validation happens here:
// malformed digests simply never match.
func loadDigests(input string) (digests []string, fromFile bool, err error) {
	if !strings.HasSuffix(input, ".txt") {
		return []string{strings.ToLower(strings.TrimSpace(input))}, false, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		digests = append(digests, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, true, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}
	return digests, true, nil
}
