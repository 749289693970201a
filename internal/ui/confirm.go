package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmPhrase is what the user must type to approve a destructive
// operation.
const ConfirmPhrase = "I AGREE"

// ConfirmDangerousOperation writes a warning box to out and reads a line
// from in. It returns true only if the line is ConfirmPhrase.
func ConfirmDangerousOperation(in io.Reader, out io.Writer, title string, warnings []string) bool {
	width := GetTerminalWidth()

	lines := []string{"", WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)), ""}
	bullet := lipgloss.NewStyle().Foreground(TextColor)
	for _, w := range warnings {
		lines = append(lines, bullet.Render("   • "+w))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	fmt.Fprintln(out, box)
	fmt.Fprintln(out)
	fmt.Fprint(out, WarningTitleStyle.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", ConfirmPhrase)))

	// A read error (closed stdin) leaves whatever was read; anything but
	// the phrase cancels.
	input, _ := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	if strings.TrimSpace(input) == ConfirmPhrase {
		return true
	}

	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	return false
}

// ResetConfirmation asks before every stored setting at location is
// deleted.
func ResetConfirmation(in io.Reader, out io.Writer, location string) bool {
	return ConfirmDangerousOperation(in, out, "RESET ALL SETTINGS", []string{
		"Every stored setting will be deleted from " + location,
		"The recent pipeline list will be cleared",
		"Defaults apply the next time the settings are read",
	})
}
