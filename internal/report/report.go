// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report defines the status and progress event sinks consumed by
// the verification engine, plus console and asynchronous implementations.
// The engine never assumes a particular rendering; segments carry a
// semantic color so sinks can render plainly or richly.
package report

// Color is the semantic color of a status segment. Sinks map these to
// whatever their rendering supports; plain sinks may ignore them.
type Color int

const (
	Plain Color = iota
	Good
	Bad
	Highlight
	Accent
	List
)

// Segment is one colored fragment of a status line.
type Segment struct {
	Text  string
	Color Color
}

// Seg builds a Segment.
func Seg(text string, color Color) Segment {
	return Segment{Text: text, Color: color}
}

// StatusSink consumes human-readable status lines. ReplaceLast signals
// that the line supersedes the previously emitted one, so renderers can
// update a single line instead of scrolling.
type StatusSink interface {
	Append(segs ...Segment)
	ReplaceLast(segs ...Segment)
}

// ProgressSink consumes coarse numeric progress for the current wordlist
// pass.
type ProgressSink interface {
	Progress(done, total int)
}

type nopStatus struct{}

func (nopStatus) Append(...Segment)      {}
func (nopStatus) ReplaceLast(...Segment) {}

type nopProgress struct{}

func (nopProgress) Progress(int, int) {}

// NopStatus is a StatusSink that discards everything.
var NopStatus StatusSink = nopStatus{}

// NopProgress is a ProgressSink that discards everything.
var NopProgress ProgressSink = nopProgress{}

// Text flattens segments to their plain text.
func Text(segs []Segment) string {
	var out string
	for _, s := range segs {
		out += s.Text
	}
	return out
}
