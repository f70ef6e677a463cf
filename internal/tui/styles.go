// Package tui provides terminal styling and an interactive browser for
// generated pinyin files.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // pinyin
	ColorAccent    = lipgloss.Color("#ffe66d") // characters
	ColorMuted     = lipgloss.Color("#666666") // help text
	ColorSuccess   = lipgloss.Color("#a8e6cf")
	ColorError     = lipgloss.Color("#ff8b94")
	ColorLabel     = lipgloss.Color("#a8dadc")
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	CharacterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	PinyinStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
