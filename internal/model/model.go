// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// Match records the recovered plaintext for one target digest and the
// algorithm that reproduced it. A digest is matched at most once per run;
// the first (word, algorithm) pair that reproduces it wins.
type Match struct {
	Word      string
	Algorithm string
}

// String returns the word/algorithm representation used in reports.
func (m Match) String() string {
	return fmt.Sprintf("%s (%s)", m.Word, m.Algorithm)
}

// RunOutcome is the result of one verification run.
type RunOutcome struct {
	// Success is true when at least one digest was matched.
	Success bool
	// Matches maps each matched digest to its recovered word and algorithm.
	Matches map[string]Match
	// StoppedEarly is true when the run was cancelled or terminated early
	// because every target digest had been matched.
	StoppedEarly bool
}

// WordlistInfo describes one wordlist available in the store.
type WordlistInfo struct {
	Name string
	Size int64
}

// String returns the name and size representation used in listings.
func (w WordlistInfo) String() string {
	return fmt.Sprintf("%s (%d bytes)", w.Name, w.Size)
}
