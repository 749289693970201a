// Cellprefs inspects and edits CellProfiler user preferences.
//
// Settings live in the platform's native store: the user defaults domain
// on macOS, the registry on Windows and a YAML file under the XDG config
// directory elsewhere. A different file can be chosen with --config, and
// --headless runs against a throwaway in-memory store.
//
// Usage:
//
//	cellprefs [command] [flags]
//
// See 'cellprefs --help' for available commands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cellprefs/internal/config"
	"github.com/muurk/cellprefs/internal/logging"
	"github.com/muurk/cellprefs/internal/prefs"
	"github.com/muurk/cellprefs/internal/ui"
	"github.com/muurk/cellprefs/internal/version"
)

// Global flags
var (
	headless   bool
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError renders a failed command as a failure box.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.NewFailureResult("cellprefs could not complete the command", err).
		AddHint("Run 'cellprefs --help' for usage"))
}

var rootCmd = &cobra.Command{
	Use:   "cellprefs",
	Short: "CellProfiler preferences utility",
	Long: `Inspect and edit CellProfiler user preferences from the terminal.

Reads and writes the same settings store the application uses, so changes
made here are picked up the next time CellProfiler starts.

Set CELLPREFS_LOG_LEVEL to debug, info, warn or error for diagnostic logs.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&headless, "headless", false, "Use an in-memory store; nothing is persisted")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file to use instead of the platform store (.yaml or .toml)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cellprefs %s\n", version.Full())
	},
}

// loadPreferences opens the settings store selected by the global flags.
func loadPreferences() (*prefs.Preferences, error) {
	p, err := prefs.Open(
		config.Options{Headless: headless, Path: configPath},
		prefs.WithLogger(logging.GetLogger().Named("prefs")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return p, nil
}
