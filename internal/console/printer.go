// Package console prints the recovery transcript.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes one line per found character and one line per buffer
// update. Styles only apply when w is a colour terminal; otherwise the
// strings are written exactly as given.
type Printer struct {
	w           io.Writer
	placeholder string
	plain       bool
	found       lipgloss.Style
	known       lipgloss.Style
	pending     lipgloss.Style
}

// NewPrinter returns a Printer writing to w. Trailing runs of placeholder
// in a buffer are rendered dimmed.
func NewPrinter(w io.Writer, placeholder string) *Printer {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Printer{
		w:           w,
		placeholder: placeholder,
		plain:       r.ColorProfile() == termenv.Ascii,
		found:       base.Foreground(lipgloss.Color("#00FF7F")).Bold(true),
		known:       base.Foreground(lipgloss.Color("#6366F1")).Bold(true),
		pending:     base.Foreground(lipgloss.Color("#5A5A5A")),
	}
}

// Found prints the discovered character.
func (p *Printer) Found(_ int, r rune) {
	_, _ = fmt.Fprintln(p.w, p.paint(p.found, string(r)))
}

// Buffer prints the current buffer.
func (p *Printer) Buffer(_ int, buf string) {
	known := buf
	if p.placeholder != "" {
		known = strings.TrimRight(buf, p.placeholder)
	}
	line := p.paint(p.known, known)
	if rest := buf[len(known):]; rest != "" {
		line += p.paint(p.pending, rest)
	}
	_, _ = fmt.Fprintln(p.w, line)
}

// paint styles s line by line so Render never pads lines to a common
// width. Plain output returns s untouched.
func (p *Printer) paint(style lipgloss.Style, s string) string {
	if p.plain || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
