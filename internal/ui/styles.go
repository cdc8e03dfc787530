package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette lifted from the email template's dark theme
	headerColor    = lipgloss.Color("#E2E8F0")
	sectionColor   = lipgloss.Color("#8250DF")
	accentColor    = lipgloss.Color("#14B8A6")
	dimColor       = lipgloss.Color("#6E7681")
	scoreColor     = lipgloss.Color("#F778BA")
	titleColor     = lipgloss.Color("#39D353")
	dateColor      = lipgloss.Color("#A371F7")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(headerColor).
			Bold(true).
			Padding(1, 0).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	SectionStyle = lipgloss.NewStyle().
			Foreground(sectionColor).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	RankStyle = lipgloss.NewStyle().
			Foreground(scoreColor).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Underline(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(dateColor).
			Italic(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(headerColor).
			Background(lipgloss.Color("#2D333B")).
			Padding(0, 1)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
