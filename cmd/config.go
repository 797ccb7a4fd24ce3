package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/config"
	"github.com/xolan/vibe/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for vibe.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

By default, vibe works without any configuration file. All settings have defaults:
  - backend: file
  - data_dir: (empty, uses the config directory)
  - slot: vibeCheckEntries
  - theme: (empty, uses the built-in theme)
  - log_level: info
  - log_file: (empty, logging disabled)

Examples:
  vibe config                      Show all current settings
  vibe config init                 Write a commented sample config file

Configuration file location:
  ~/.config/vibe/config.toml          Linux
  %APPDATA%\vibe\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath returns the --config flag or the default location
func resolveConfigPath() (string, bool) {
	if configPath != "" {
		return configPath, true
	}
	path, err := config.GetConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		return "", false
	}
	return path, true
}

// showConfig displays the current effective configuration
func showConfig() {
	path, ok := resolveConfigPath()
	if !ok {
		return
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fail("Failed to load configuration", err,
			fmt.Sprintf("Check that your config file is valid TOML format: %s", path))
		return
	}
	svc := service.NewConfigService(path, cfg)

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		fail("Failed to determine data directory", err, "Set data_dir in your config file")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for vibe")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", svc.GetPath())
	if svc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File not found (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "  backend:       %s\n", cfg.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "  data_dir:      %s\n", displayValue(cfg.DataDir, dataDir))
	_, _ = fmt.Fprintf(deps.Stdout, "  slot:          %s\n", cfg.Slot)
	_, _ = fmt.Fprintf(deps.Stdout, "  theme:         %s\n", displayValue(cfg.Theme, "default"))
	_, _ = fmt.Fprintf(deps.Stdout, "  log_level:     %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "  log_file:      %s\n", displayValue(cfg.LogFile, "disabled"))
	_, _ = fmt.Fprintln(deps.Stdout)

	if !svc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "To customize settings, run 'vibe config init' and edit the file.")
	}
}

// displayValue shows the default in parentheses when value is empty
func displayValue(value, fallback string) string {
	if value == "" {
		return fmt.Sprintf("(%s)", fallback)
	}
	return value
}

// initConfig writes a commented sample config file
func initConfig() {
	path, ok := resolveConfigPath()
	if !ok {
		return
	}

	svc := service.NewConfigService(path, config.DefaultConfig())
	if svc.Exists() {
		fail(fmt.Sprintf("Config file already exists at %s", path), nil, "Edit the existing file or remove it first")
		return
	}

	if err := svc.Init(); err != nil {
		fail("Failed to create config file", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file at %s\n", path)
}
