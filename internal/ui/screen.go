package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks a buffer line whose head has scrolled out of view.
const Ellipsis = "…"

// TailTruncate keeps the last width cells of s, replacing the dropped head
// with Ellipsis. Typing always happens at the end of the buffer, so the end
// stays visible.
func TailTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	return ansi.TruncateLeft(s, w-width+ansi.StringWidth(Ellipsis), Ellipsis)
}

// Screen is what the display area shows.
type Screen struct {
	Text    string
	Preview string
	Notice  string
	Moving  bool
	Width   int
}

// RenderScreen renders the buffer line, the preview line and the notice
// line. The notice line is always present so the keypad does not shift.
func RenderScreen(s Screen) string {
	var b strings.Builder

	text := TailTruncate(s.Text, s.Width)
	b.WriteString(PromptStyle.Render(">") + " ")
	if s.Moving {
		b.WriteString(DimStyle.Render(text))
	} else {
		b.WriteString(text)
	}
	b.WriteString("\n")

	preview := s.Preview
	if preview != "" {
		preview = "= " + preview
	}
	style := DimStyle
	if s.Moving {
		style = SuccessStyle
	}
	b.WriteString("  " + style.Render(TailTruncate(preview, s.Width)))
	b.WriteString("\n")

	b.WriteString("  " + ErrorStyle.Render(s.Notice))
	b.WriteString("\n")
	return b.String()
}
