package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Detail is one labelled line in a result box.
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string   // e.g., "Setting updated"
	Details []Detail // Rendered in insertion order
	Error   error    // For failure results
	Hints   []string // Suggestions shown below the details
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string) *Result {
	return &Result{Type: ResultSuccess, Title: title, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string) *Result {
	return &Result{Type: ResultWarning, Title: title, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a key-value line.
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// AddHint appends a suggestion line.
func (r *Result) AddHint(hint string) *Result {
	r.Hints = append(r.Hints, hint)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		title  string
		border lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		title = ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title))
		border = ErrorColor
	case ResultWarning:
		title = WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, r.Title))
		border = WarningColor
	default:
		title = SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
		border = SuccessColor
	}

	lines := []string{"", title, ""}

	if r.Type == ResultFailure && r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	for _, h := range r.Hints {
		lines = append(lines, HintStyle.Render("   "+h))
	}
	if len(r.Hints) > 0 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
