// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// styles maps semantic colors to their terminal rendering.
var styles = map[Color]lipgloss.Style{
	Plain:     lipgloss.NewStyle().Foreground(lipgloss.Color("#fff")),
	Good:      lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0")),
	Bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("#f00")),
	Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0")),
	Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("#0ff")),
	List:      lipgloss.NewStyle().Foreground(lipgloss.Color("#e6d9ff")),
}

// Console renders status lines to a terminal or plain writer. On a
// terminal, ReplaceLast rewrites the current line in place; elsewhere it
// falls back to ordinary lines. Progress events are ignored; a console
// has no progress bar to drive.
type Console struct {
	out      io.Writer
	color    bool
	inline   bool // terminal supports \r line rewriting
	replaced bool // last write was an in-place line
}

// NewConsole returns a console sink writing to out. Rich rendering is
// enabled only when out is a terminal.
func NewConsole(out io.Writer) *Console {
	isTerm := false
	if f, ok := out.(*os.File); ok {
		isTerm = term.IsTerminal(int(f.Fd()))
	}
	return &Console{out: out, color: isTerm, inline: isTerm}
}

// Append writes a status line.
func (c *Console) Append(segs ...Segment) {
	if c.replaced {
		fmt.Fprintln(c.out)
		c.replaced = false
	}
	fmt.Fprintln(c.out, c.render(segs))
}

// ReplaceLast rewrites the previous status line when the output is a
// terminal, and appends otherwise.
func (c *Console) ReplaceLast(segs ...Segment) {
	if !c.inline {
		fmt.Fprintln(c.out, c.render(segs))
		return
	}
	fmt.Fprintf(c.out, "\r\033[K%s", c.render(segs))
	c.replaced = true
}

// Progress discards numeric progress events.
func (c *Console) Progress(done, total int) {}

func (c *Console) render(segs []Segment) string {
	if !c.color {
		return Text(segs)
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(styles[s.Color].Render(s.Text))
	}
	return b.String()
}
