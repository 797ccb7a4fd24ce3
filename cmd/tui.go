package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for vibe.

Views available:
  - Entries: Log moods, browse and delete entries
  - Stats: Streaks and mood breakdown
  - Config: Current configuration

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - n: Log a new mood
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	if err := tui.Run(svc); err != nil {
		fail("Failed to run TUI", err, "")
		return
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
