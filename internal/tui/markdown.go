package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultRenderWidth = 80

// markdownRenderer renders assistant replies with glamour. A nil renderer,
// or one whose glamour setup failed, returns the text unchanged.
type markdownRenderer struct {
	width int
	term  *glamour.TermRenderer
}

func newMarkdownRenderer() *markdownRenderer {
	r := &markdownRenderer{}
	r.SetWidth(defaultRenderWidth)
	return r
}

// SetWidth rebuilds the glamour renderer for a new word-wrap width.
func (r *markdownRenderer) SetWidth(width int) {
	if r == nil || width == r.width {
		return
	}
	r.width = width

	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.term = nil
		return
	}
	r.term = term
}

func (r *markdownRenderer) Render(text string) string {
	if r == nil || r.term == nil {
		return text
	}
	out, err := r.term.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
