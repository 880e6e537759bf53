package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Arnthorny/SimlCalc/internal/config"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	ActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	PromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	KeyStyle     = lipgloss.NewStyle().Padding(0, 1)
	CursorStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
)

// ApplyTheme recolours the styles. Empty theme fields fall back to
// config.DefaultTheme.
func ApplyTheme(t config.Theme) {
	d := config.DefaultTheme
	TitleStyle = TitleStyle.Foreground(colour(t.Title, d.Title))
	ActiveStyle = ActiveStyle.Foreground(colour(t.Active, d.Active))
	DimStyle = DimStyle.Foreground(colour(t.Dim, d.Dim))
	ErrorStyle = ErrorStyle.Foreground(colour(t.Error, d.Error))
	SuccessStyle = SuccessStyle.Foreground(colour(t.Success, d.Success))
	PromptStyle = PromptStyle.Foreground(colour(t.Prompt, d.Prompt))
	CursorStyle = CursorStyle.Foreground(colour(t.Active, d.Active))
}

func colour(v, fallback string) lipgloss.Color {
	if v == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(v)
}
