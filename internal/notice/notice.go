// Package notice implements the transient advisory message shown for
// rejected input and failed commits.
package notice

import (
	"strings"
	"time"
)

// Timing of a notice: it is visible for Visible, then its text is cleared
// Fade later so the hide transition can finish.
const (
	Visible = 1200 * time.Millisecond
	Fade    = 600 * time.Millisecond
)

// MaxLength is the longest message shown before truncation.
const MaxLength = 30

// Board holds at most one notice.
type Board struct {
	text    string
	visible bool
}

// Show posts msg. It returns false, and drops msg, while another notice
// still has text.
func (b *Board) Show(msg string) bool {
	if b.text != "" || msg == "" {
		return false
	}
	b.text = Truncate(msg)
	b.visible = true
	return true
}

// Hide starts the fade; the text stays until Clear.
func (b *Board) Hide() {
	b.visible = false
}

// Clear removes the text, allowing the next notice.
func (b *Board) Clear() {
	b.text = ""
	b.visible = false
}

// Text returns the current notice text.
func (b *Board) Text() string {
	return b.text
}

// Visible reports whether the notice is showing.
func (b *Board) Visible() bool {
	return b.visible
}

// Truncate shortens msg to MaxLength characters, cutting at the last space
// inside the limit and adding "...". Without such a space the cut is hard.
// Characters are counted as runes, so a cut never splits one.
func Truncate(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxLength {
		return msg
	}
	head := string(runes[:MaxLength])
	if cut := strings.LastIndex(head, " "); cut > 0 {
		head = head[:cut]
	}
	return head + "..."
}
