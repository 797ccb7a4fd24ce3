package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/filter"
	"github.com/xolan/vibe/internal/timeutil"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries with optional filters",
	Long: `List journal entries, newest first.

Filters can be combined:
  --mood     Only these moods (repeat or comma-separate)
  --search   Case-insensitive text search in notes
  --from     Earliest date (YYYY-MM-DD or DD/MM/YYYY)
  --to       Latest date
  --last N   Only the last N days including today

Examples:
  vibe list                          All entries
  vibe list --mood rough,struggling  Only the hard days
  vibe list --search gym --last 30   Gym notes from the last 30 days
  vibe list --from 2024-06-01        Everything since June 1st`,
	Run: func(cmd *cobra.Command, args []string) {
		runList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addFilterFlags(listCmd)
}

// addFilterFlags registers the filter flags shared by list and export
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("mood", nil, "Filter by mood (amazing, good, okay, rough, struggling)")
	cmd.Flags().String("search", "", "Filter by text in notes (case-insensitive)")
	cmd.Flags().String("from", "", "Start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().String("to", "", "End date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().Int("last", 0, "Filter by last N days (e.g., --last 7 for last 7 days)")
}

// filterFromFlags builds a filter from the shared flags. It reports errors
// itself and returns ok=false when the command should stop.
func filterFromFlags(cmd *cobra.Command) (f *filter.Filter, ok bool) {
	moodArgs, _ := cmd.Flags().GetStringSlice("mood")
	keyword, _ := cmd.Flags().GetString("search")
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	lastDays, _ := cmd.Flags().GetInt("last")

	moods := make([]entry.Mood, 0, len(moodArgs))
	for _, arg := range moodArgs {
		m, err := entry.ParseMood(arg)
		if err != nil {
			fail(fmt.Sprintf("Invalid --mood value '%s'", arg), err, moodHint())
			return nil, false
		}
		moods = append(moods, m)
	}

	start, end, err := timeutil.ParseDateRangeFlags(fromStr, toStr, lastDays, deps.Now())
	if err != nil {
		fail("Invalid date filter", err, "Use either --last N or --from/--to, with dates as YYYY-MM-DD or DD/MM/YYYY")
		return nil, false
	}

	return filter.NewFilter(keyword, moods, start, end), true
}

// runList handles the list command logic
func runList(cmd *cobra.Command) {
	f, ok := filterFromFlags(cmd)
	if !ok {
		return
	}

	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	result := svc.Entry.List(f)
	description := cli.FormatFilterDescription(f.Moods, f.Keyword, f.Start, f.End)

	if len(result.Entries) == 0 {
		if description == "" {
			_, _ = fmt.Fprintln(deps.Stdout, "No entries yet")
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "No entries match (%s)\n", description)
		}
		return
	}

	if description != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Entries (%s):\n", description)
	}
	printEntries(result.Entries)
	_, _ = fmt.Fprintf(deps.Stdout, "\nShowing %d of %d %s\n",
		len(result.Entries), result.Total, cli.Pluralize("entry", result.Total))
}

// filterCriteria describes the active filters for export metadata
func filterCriteria(f *filter.Filter) map[string]string {
	criteria := map[string]string{}
	if len(f.Moods) > 0 {
		names := make([]string, len(f.Moods))
		for i, m := range f.Moods {
			names[i] = string(m)
		}
		criteria["mood"] = strings.Join(names, ",")
	}
	if f.Keyword != "" {
		criteria["search"] = f.Keyword
	}
	if !f.Start.IsZero() {
		criteria["from"] = f.Start.Format(entry.DateLayout)
	}
	if !f.End.IsZero() {
		criteria["to"] = f.End.Format(entry.DateLayout)
	}
	return criteria
}
