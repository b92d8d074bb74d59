// Package progress renders a single-line terminal progress bar.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const barWidth = 30

// Bar is a single-line progress indicator redrawn in place with a carriage
// return. It is written to stderr by callers so stdout stays clean.
type Bar struct {
	w         io.Writer
	total     int
	current   int
	desc      string
	lastWidth int
}

// New creates a progress bar for total steps with an initial description.
func New(w io.Writer, total int, desc string) *Bar {
	b := &Bar{w: w, total: total, desc: desc}
	b.render()
	return b
}

// SetDescription replaces the label shown before the bar and redraws.
func (b *Bar) SetDescription(desc string) {
	b.desc = desc
	b.render()
}

// Increment advances the bar by one step and redraws.
func (b *Bar) Increment() {
	if b.current < b.total {
		b.current++
	}
	b.render()
}

// Finish redraws the bar one last time and moves to the next line.
func (b *Bar) Finish() {
	b.render()
	fmt.Fprintln(b.w)
}

func (b *Bar) render() {
	filled := 0
	if b.total > 0 {
		filled = b.current * barWidth / b.total
	}

	line := fmt.Sprintf("%s [%s%s] %d/%d",
		b.desc,
		strings.Repeat("#", filled),
		strings.Repeat("-", barWidth-filled),
		b.current, b.total)

	// Pad with spaces so a shorter redraw fully covers the previous line.
	width := runewidth.StringWidth(line)
	if width < b.lastWidth {
		line += strings.Repeat(" ", b.lastWidth-width)
	}
	b.lastWidth = width

	fmt.Fprintf(b.w, "\r%s", line)
}
