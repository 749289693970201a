package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/cellprefs/internal/prefs"
	"github.com/muurk/cellprefs/internal/ui"
)

// Command flags
var (
	listFormat  string
	resolveMode string
	resetYes    bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(whereCmd)
}

// listCmd shows every setting
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings with their values and defaults",
	Long: `List every setting with its effective value and default. Stored keys
that cellprefs does not know, such as those written by other CellProfiler
versions, are listed with kind "other".`,
	Example: `  # Table view
  cellprefs list

  # YAML for scripting
  cellprefs list --format yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format (table, yaml)")
}

type listEntry struct {
	Key     string `yaml:"key"`
	Kind    string `yaml:"kind"`
	Value   string `yaml:"value"`
	Default string `yaml:"default"`
	Stored  bool   `yaml:"stored"`
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := loadPreferences()
	if err != nil {
		return err
	}
	others, err := p.OtherSettings()
	if err != nil {
		return err
	}
	infos := append(p.ShowAll(), others...)
	out := cmd.OutOrStdout()

	switch listFormat {
	case "yaml":
		entries := make([]listEntry, 0, len(infos))
		for _, info := range infos {
			entries = append(entries, listEntry{
				Key:     info.Key,
				Kind:    info.Kind.String(),
				Value:   info.Value,
				Default: info.Default,
				Stored:  info.Stored,
			})
		}
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "table":
		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			stored := ""
			if info.Stored {
				stored = "yes"
			}
			rows = append(rows, []string{info.Key, info.Kind.String(), info.Value, info.Default, stored})
		}
		fmt.Fprintln(out, renderTable([]string{"Key", "Kind", "Value", "Default", "Stored"}, rows))
		fmt.Fprintf(out, "Store: %s\n", p.Backend().Location())
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected table or yaml)", listFormat)
	}
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Long: `Print the effective value of a setting: the stored value if there is one,
otherwise its default. Run 'cellprefs list' to see the valid keys.`,
	Example: `  cellprefs get PixelSize
  cellprefs get DefaultOutputDirectory`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		value, err := p.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Long: `Store a setting. The value is checked against the setting's type:
numbers for font and pixel sizes, "r,g,b" for colours, true/false for
flags and an existing directory for DefaultOutputDirectory.`,
	Example: `  cellprefs set Colormap gray
  cellprefs set BackgroundColor 255,255,255
  cellprefs set DefaultOutputDirectory ~/results`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := p.Set(key, value); err != nil {
			return err
		}
		effective, _ := p.Get(key)

		result := ui.NewSuccessResult("Setting updated")
		if p.Headless() {
			result = ui.NewWarningResult("Setting not persisted").
				AddHint("Headless mode keeps values in memory for this command only")
		}
		result.AddDetail("Key", key).
			AddDetail("Value", effective).
			AddDetail("Store", p.Backend().Location())
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the recently used pipeline files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		files := p.RecentFiles()
		out := cmd.OutOrStdout()
		if len(files) == 0 {
			fmt.Fprintln(out, "No recent files.")
			return nil
		}
		rows := make([][]string, 0, len(files))
		for i, f := range files {
			rows = append(rows, []string{strconv.Itoa(i + 1), f})
		}
		fmt.Fprintln(out, renderTable([]string{"#", "File"}, rows, 0))
		return nil
	},
}

var recentAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Put a file at the top of the recent list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		if err := p.AddRecentFile(args[0]); err != nil {
			return fmt.Errorf("failed to update recent files: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d recent files)\n", args[0], len(p.RecentFiles()))
		return nil
	},
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recent files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		if err := p.ClearRecentFiles(); err != nil {
			return fmt.Errorf("failed to clear recent files: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Recent files cleared.")
		return nil
	},
}

func init() {
	recentCmd.AddCommand(recentAddCmd)
	recentCmd.AddCommand(recentClearCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Resolve a pipeline path against the default folders",
	Long: `Resolve a path the way saved pipelines do.

In output mode "./" refers to the Default Output Folder and "&/" to the
Default Input Folder. Image mode swaps the two markers. Bare file names
resolve under the Default Output Folder and URLs are printed unchanged.`,
	Example: `  cellprefs resolve ./measurements.csv
  cellprefs resolve --mode image ./plate1/A01.tif`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parsePathMode(resolveMode)
		if err != nil {
			return err
		}
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		resolved, err := p.AbsolutePath(args[0], mode)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resolved)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveMode, "mode", "output", "Which folder \"./\" refers to (output, image)")
}

func parsePathMode(s string) (prefs.PathMode, error) {
	switch s {
	case "output", string(prefs.AbsPathOutput):
		return prefs.AbsPathOutput, nil
	case "image", string(prefs.AbsPathImage):
		return prefs.AbsPathImage, nil
	default:
		return "", fmt.Errorf("%w: %q (expected output or image)", prefs.ErrUnknownPathMode, s)
	}
}

var colorCmd = &cobra.Command{
	Use:   "color [r,g,b]",
	Short: "Show or change the window background colour",
	Example: `  cellprefs color
  cellprefs color 200,200,255`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			c, err := prefs.ParseColor(args[0])
			if err != nil {
				return err
			}
			if err := p.SetBackgroundColor(c); err != nil {
				return err
			}
		}
		c := p.BackgroundColor()
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", ui.Swatch(c.Hex(), 8), c, c.Hex())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored setting",
	Long: `Delete every stored setting and the recent file list so that defaults
apply again. Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		location := p.Backend().Location()
		if !resetYes && !ui.ResetConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(), location) {
			return nil
		}
		if err := p.Reset(); err != nil {
			return fmt.Errorf("reset incomplete: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Settings reset").AddDetail("Store", location))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where settings and related folders live",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		plugins, ok := p.PluginDirectory()
		if !ok {
			plugins = "(none)"
		}
		rows := [][]string{
			{"Store", p.Backend().Location()},
			{"Headless", strconv.FormatBool(p.Headless())},
			{"Root directory", p.RootDirectory()},
			{"Module directory", p.ModuleDirectory()},
			{"Plugin directory", plugins},
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Item", "Location"}, rows))
		return nil
	},
}
