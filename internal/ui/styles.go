// Package ui holds the lipgloss palette and named styles for the recap TUI.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorRed     = lipgloss.Color("#E5534B")
	ColorGreen   = lipgloss.Color("#57AB5A")
	ColorYellow  = lipgloss.Color("#C69026")
	ColorBlue    = lipgloss.Color("#539BF5")
	ColorGray    = lipgloss.Color("#768390")
	ColorDimGray = lipgloss.Color("#444C56")
	ColorWhite   = lipgloss.Color("#ADBAC7")
	ColorMagenta = lipgloss.Color("#B083F0")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	LabelActiveStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	CheckboxStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	BusyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	RawResponseStyle = lipgloss.NewStyle().
				Foreground(ColorDimGray)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	PanelTitleActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBlue)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	PickedMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SpeakerStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)
)
