package render

import "github.com/charmbracelet/lipgloss"

// ANSI base colours, matching what classic termcolor output looked like.
const (
	colorRed   = lipgloss.Color("1")
	colorGreen = lipgloss.Color("2")
	colorBlue  = lipgloss.Color("4")
	colorWhite = lipgloss.Color("7")
)

const titleText = " --! Onapsis Adventure !-- "

type styles struct {
	banner lipgloss.Style
	prompt lipgloss.Style
	err    lipgloss.Style
	title  lipgloss.Style

	clock        lipgloss.Style
	clockBracket lipgloss.Style
	level        lipgloss.Style
	levelBracket lipgloss.Style
	dollar       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return styles{
		banner: base.Bold(true).Foreground(colorBlue).Background(colorWhite),
		prompt: base.Bold(true).Foreground(colorWhite),
		err:    base.Bold(true).Foreground(colorRed),
		title:  base.Bold(true).Foreground(colorRed).Background(colorWhite),

		clock:        base.Foreground(colorGreen),
		clockBracket: base.Bold(true).Foreground(colorGreen),
		level:        base.Bold(true).Foreground(colorBlue),
		levelBracket: base.Bold(true).Foreground(colorWhite),
		dollar:       base.Bold(true),
	}
}
