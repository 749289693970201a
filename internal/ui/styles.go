package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for cellprefs output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headings, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, confirmation
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for warning and confirmation titles
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys ("Location:")
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(24)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// HintStyle is for follow-up suggestions below a result
	HintStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, clamped to
// [MinTerminalWidth, MaxContentWidth].
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// Swatch renders a block of width cells filled with the colour hex
// ("#rrggbb").
func Swatch(hex string, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}
