package ui

import (
	"fmt"
	"strings"

	"github.com/Arnthorny/SimlCalc/internal/token"
)

// KeyWidth is the label width of one keypad cell.
const KeyWidth = 3

// RenderKeypad renders the button grid with the button at row, col
// highlighted. Rows shorter than the widest row stretch their last button
// across the remaining cells.
func RenderKeypad(keys [][]token.Button, row, col int) string {
	cols := 0
	for _, r := range keys {
		cols = max(cols, len(r))
	}

	var b strings.Builder
	for i, r := range keys {
		for j, btn := range r {
			if j > 0 {
				b.WriteString(" ")
			}
			width := KeyWidth
			if j == len(r)-1 && len(r) < cols {
				// Each spanned cell adds its label width, two padding
				// columns and one separator.
				width += (cols - len(r)) * (KeyWidth + 3)
			}
			style := KeyStyle
			if i == row && j == col {
				style = CursorStyle
			}
			b.WriteString(style.Render(pad(btn.Label, width)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pad centres s in width columns. Labels are single-cell runes, so rune
// count is display width.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, width-n-left, "")
}
