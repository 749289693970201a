// Package ui provides terminal output components for the cellprefs CLI.
//
// Components follow a "render once and exit" pattern built on Lipgloss:
//
//   - Result: success, failure and warning boxes with ordered details
//   - ConfirmDangerousOperation: a warning box plus a typed confirmation
//   - Swatch: a filled block showing a colour setting
//
// Widths come from GetTerminalWidth, which clamps the real terminal size so
// that output stays readable in narrow windows and pipes.
//
// Logging is controlled separately via CELLPREFS_LOG_LEVEL; when unset the
// logger is silent and only this package's output is shown.
package ui
