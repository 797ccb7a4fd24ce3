package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks and mood breakdown",
	Long: `Show summary statistics for your journal.

Display summary statistics including:
  - Total number of entries
  - Current streak (consecutive days ending today)
  - Longest streak ever
  - Days with at least one entry
  - Breakdown by mood

Examples:
  vibe stats`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats handles the stats command logic
func runStats() {
	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	summary := svc.Stats.Summary()

	_, _ = fmt.Fprintln(deps.Stdout, "Journal statistics")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total entries:     %d\n", summary.TotalCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Current streak:    %s\n", summary.StreakLabel)
	_, _ = fmt.Fprintf(deps.Stdout, "Longest streak:    %s\n", stats.FormatDays(summary.LongestStreak))
	_, _ = fmt.Fprintf(deps.Stdout, "Days with entries: %d\n", summary.DaysWithEntries)

	if summary.TotalCount == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Moods:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, b := range summary.Moods {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-14s %s %3d (%5.1f%%)\n",
			cli.FormatMood(b.Mood), cli.FormatBar(b.Percentage, 20), b.Count, b.Percentage)
	}
}

