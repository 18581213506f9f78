package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple, for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, for summaries and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, for matches and completed actions.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red, for failures and non-matches.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, for risk notes.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, for topic names, keys and patterns.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for topic headings and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for summaries and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for positive results.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for negative results.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for topic names and field labels.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// groupStyle is for group headings in `list`.
	groupStyle = TitleStyle.
			MarginTop(1)
)

// boolStyle renders b green when true and red when false.
func boolStyle(b bool) lipgloss.Style {
	if b {
		return SuccessStyle
	}
	return ErrorStyle
}
