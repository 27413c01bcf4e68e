// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package verifier implements the digest verification engine: it groups
// target digests by length, infers candidate algorithms per group, hashes
// candidate words from the selected wordlists and reports every digest
// whose preimage appears in a list.
//
// The matching loop is single-threaded and synchronous. Concurrency lives
// at the boundary: callers run Verify on a worker goroutine, cancel it
// through the context and drain status/progress events through the sinks
// (see report.Async).
package verifier

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/message"

	"github.com/mmark5466-dev/pass-fail/internal/hashalg"
	"github.com/mmark5466-dev/pass-fail/internal/i18n"
	"github.com/mmark5466-dev/pass-fail/internal/logging"
	"github.com/mmark5466-dev/pass-fail/internal/model"
	"github.com/mmark5466-dev/pass-fail/internal/report"
	"github.com/mmark5466-dev/pass-fail/internal/wordlist"
)

// defaultProgressEvery is the candidate-line interval between progress
// events.
const defaultProgressEvery = 1000

// Engine runs verification passes against a wordlist store. The zero
// values of the optional fields fall back to the default provider, the
// built-in length table, a console status sink and no progress sink.
type Engine struct {
	Store         *wordlist.Store
	Provider      hashalg.Provider
	Table         Table
	Status        report.StatusSink
	Progress      report.ProgressSink
	ProgressEvery int
}

// New returns an engine reading wordlists from store, with default
// provider, table and sinks.
func New(store *wordlist.Store) *Engine {
	return &Engine{Store: store}
}

// testedKey is a (word, algorithm) pair that has already been hashed
// during this run. Entries are never removed; re-testing the same pair is
// pure waste since the digest is deterministic.
type testedKey struct {
	word string
	algo string
}

// Verify checks the digest input (a literal digest or a path to a .txt
// file of digests) against the named wordlists. Only an unreadable
// digest file returns an error; all other failures are absorbed as
// status diagnostics and shrink the run's scope. Cancel via ctx; a
// cancelled run returns whatever was matched before the stop with
// StoppedEarly set.
func (e *Engine) Verify(ctx context.Context, input string, lists []string) (model.RunOutcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	status := e.Status
	if status == nil {
		status = report.NewConsole(os.Stdout)
	}
	progress := e.Progress
	if progress == nil {
		progress = report.NopProgress
	}
	provider := e.Provider
	if provider == nil {
		provider = hashalg.Default()
	}
	table := e.Table
	if table == nil {
		table = DefaultTable()
	}
	every := e.ProgressEvery
	if every <= 0 {
		every = defaultProgressEvery
	}
	// Thousands separators follow the active locale, same as the
	// translated status text around them.
	printer := message.NewPrinter(i18n.Tag())

	digests, fromFile, err := loadDigests(input)
	if err != nil {
		return model.RunOutcome{}, err
	}
	if fromFile {
		status.Append(report.Seg(i18n.T("verify.loaded_digests", len(digests), input), report.Plain))
	}

	// Partition into length groups. Sets give O(1) membership tests;
	// ordered keeps first-seen digest order for deterministic reporting.
	groups := make(map[int]map[string]struct{})
	var ordered []string
	for _, d := range digests {
		set, ok := groups[len(d)]
		if !ok {
			set = make(map[string]struct{})
			groups[len(d)] = set
		}
		if _, dup := set[d]; !dup {
			set[d] = struct{}{}
			ordered = append(ordered, d)
		}
	}
	totalTargets := len(ordered)

	matches := make(map[string]model.Match)
	tested := make(map[testedKey]struct{})
	stopped := false
	cancelled := false

outer:
	for _, length := range sortedKeys(groups) {
		set := groups[length]
		algos, known := table[length]
		if !known {
			status.Append(report.Seg(i18n.T("verify.unknown_length", length, sample(set)), report.Plain))
			logging.Debugf("skipping %d digest(s) of unsupported length %d", len(set), length)
			continue
		}

		status.Append(
			report.Seg(i18n.T("verify.testing_group", length), report.Plain),
			report.Seg(strings.Join(algos, ", "), report.Accent),
		)

		foundInGroup := 0
		for _, algo := range algos {
			if ctx.Err() != nil {
				stopped, cancelled = true, true
				break outer
			}
			if !provider.Supported(algo) {
				status.Append(
					report.Seg(i18n.T("verify.algorithm_unavailable"), report.Bad),
					report.Seg(algo, report.Accent),
					report.Seg(i18n.T("verify.algorithm_unavailable_tail"), report.Bad),
				)
				continue
			}
			// One hasher per algorithm pass, reset per word.
			hasher, err := provider.New(algo)
			if err != nil {
				status.Append(
					report.Seg(i18n.T("verify.algorithm_unavailable"), report.Bad),
					report.Seg(algo, report.Accent),
					report.Seg(i18n.T("verify.algorithm_unavailable_tail"), report.Bad),
				)
				continue
			}

			for _, name := range lists {
				if ctx.Err() != nil {
					stopped, cancelled = true, true
					break outer
				}
				list, err := e.Store.Open(name)
				if err != nil {
					if os.IsNotExist(err) {
						status.Append(
							report.Seg(i18n.T("verify.wordlist_missing"), report.Bad),
							report.Seg(name, report.List),
						)
					} else {
						status.Append(
							report.Seg(i18n.T("verify.wordlist_error"), report.Bad),
							report.Seg(name, report.List),
							report.Seg(": "+err.Error(), report.Bad),
						)
					}
					continue
				}

				status.Append(
					report.Seg(i18n.T("verify.checking_wordlist"), report.Plain),
					report.Seg(name, report.List),
				)

				for _, entry := range list.Entries() {
					if ctx.Err() != nil {
						stopped, cancelled = true, true
						break outer
					}

					key := testedKey{word: entry.Word, algo: algo}
					if _, dup := tested[key]; dup {
						continue
					}
					tested[key] = struct{}{}

					hasher.Reset()
					hasher.Write([]byte(entry.Word))
					digest := hex.EncodeToString(hasher.Sum(nil))

					if _, hit := set[digest]; hit {
						if _, seen := matches[digest]; !seen {
							matches[digest] = model.Match{Word: entry.Word, Algorithm: algo}
							foundInGroup++
						}
					}

					if len(matches) == totalTargets {
						status.Append(report.Seg(i18n.T("verify.all_found", totalTargets), report.Good))
						stopped = true
						break outer
					}

					if entry.Line%every == 0 {
						status.ReplaceLast(
							report.Seg(i18n.T("verify.progress_checked",
								printer.Sprintf("%d", entry.Line), printer.Sprintf("%d", list.Total)), report.Plain),
							report.Seg(name, report.List),
							report.Seg(i18n.T("verify.progress_using"), report.Plain),
							report.Seg(algo, report.Accent),
							report.Seg("...", report.Plain),
						)
						progress.Progress(entry.Line, list.Total)
					}
				}

				// Remaining wordlists cannot add anything once every
				// digest of this group is matched.
				if foundInGroup == len(set) {
					status.Append(
						report.Seg(i18n.T("verify.group_complete_head"), report.Good),
						report.Seg(fmt.Sprint(len(set)), report.Plain),
						report.Seg(i18n.T("verify.group_complete_for"), report.Good),
						report.Seg(i18n.T("verify.group_complete_len", length), report.Highlight),
						report.Seg(i18n.T("verify.group_complete_using"), report.Good),
						report.Seg(algo, report.Accent),
					)
					break
				}
			}

			if foundInGroup == len(set) {
				break
			}
		}

		status.Append()
	}

	if cancelled {
		status.Append(report.Seg(i18n.T("verify.cancelled"), report.Highlight))
	}

	e.reportResults(status, ordered, matches)

	return model.RunOutcome{
		Success:      len(matches) > 0,
		Matches:      matches,
		StoppedEarly: stopped,
	}, nil
}

// reportResults emits the per-match lines and the final summary, in
// first-seen digest order.
func (e *Engine) reportResults(status report.StatusSink, ordered []string, matches map[string]model.Match) {
	for _, digest := range ordered {
		m, ok := matches[digest]
		if !ok {
			continue
		}
		status.Append(
			report.Seg("[ ! ] ", report.Bad),
			report.Seg(i18n.T("verify.weak_found"), report.Plain),
			report.Seg(m.Word, report.Bad),
		)
		status.Append(
			report.Seg(i18n.T("verify.result_digest"), report.Plain),
			report.Seg(digest, report.Highlight),
			report.Seg(i18n.T("verify.result_algorithm"), report.Plain),
			report.Seg(m.Algorithm, report.Accent),
			report.Seg(i18n.T("verify.result_close"), report.Plain),
		)
	}

	switch {
	case len(matches) == 0:
		status.Append(report.Seg(i18n.T("verify.no_matches"), report.Plain))
	case len(matches) == len(ordered):
		status.Append(report.Seg(i18n.T("verify.found_all", len(matches)), report.Good))
	default:
		status.Append(report.Seg(i18n.T("verify.found_partial", len(matches), len(ordered)), report.Plain))
	}
}

// sortedKeys returns the group lengths in ascending order so runs are
// deterministic regardless of map iteration.
func sortedKeys(groups map[int]map[string]struct{}) []int {
	lengths := make([]int, 0, len(groups))
	for l := range groups {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// sample returns one digest from a group for diagnostics.
func sample(set map[string]struct{}) string {
	for d := range set {
		return d
	}
	return ""
}
