package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/journal"
	"github.com/xolan/vibe/internal/storage"
	"github.com/xolan/vibe/internal/timeutil"
)

var (
	configPath string
	verbose    bool
	dateFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "vibe",
	Short: "A mood journal for the terminal",
	Long: `vibe is a small mood journal: log how you feel each day and keep your streak going.

Usage:
  vibe                                  List entries with total and current streak
  vibe <mood> [notes...]                Log a mood for today (e.g., vibe good long walk)
  vibe <mood> [notes...] --date D       Log a mood for another day
  vibe list --mood rough --last 7       List filtered entries
  vibe delete <id>                      Delete an entry (with confirmation)
  vibe clear                            Delete all entries (with confirmation)
  vibe stats                            Show streaks and mood breakdown
  vibe validate                         Check journal storage health
  vibe restore [n]                      Restore from backup (default: most recent)
  vibe tui                              Launch the interactive UI

Moods: amazing, good, okay, rough, struggling
Dates: YYYY-MM-DD or DD/MM/YYYY`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}

		if len(args) == 0 {
			showJournal()
			return
		}

		createEntry(args)
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check journal storage health",
	Long:  `Validate the stored journal and report on its health, including any records that cannot be read.`,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is <user config dir>/vibe/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "write debug logs to stderr")
	rootCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date of the entry (YYYY-MM-DD or DD/MM/YYYY, default today)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"vibe version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// createEntry logs a mood. The first argument is the mood, the rest are notes.
func createEntry(args []string) {
	mood := args[0]
	notes := strings.Join(args[1:], " ")

	date := ""
	if dateFlag != "" {
		normalized, err := timeutil.NormalizeDate(dateFlag)
		if err != nil {
			fail(fmt.Sprintf("Invalid date '%s'", dateFlag), err, "")
			return
		}
		date = normalized
	}

	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	e, err := svc.Entry.Create(mood, date, notes)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidMood):
			fail(fmt.Sprintf("Unknown mood '%s'", mood), err, moodHint())
		case errors.Is(err, journal.ErrInvalidDate):
			fail(fmt.Sprintf("Invalid date '%s'", date), err, "Use format YYYY-MM-DD")
		default:
			failWrite("save entry", err, svc)
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s on %s", cli.FormatMood(e.Mood), timeutil.FormatDisplayDate(e.Date))
	if e.HasNotes() {
		_, _ = fmt.Fprintf(deps.Stdout, " (%s)", e.Notes)
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "Current streak: %s\n", svc.Stats.StreakLabel())
}

// showJournal lists every entry newest first, followed by the totals
func showJournal() {
	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	result := svc.Entry.List(nil)
	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries yet. Start with: vibe <mood> [notes]")
		_, _ = fmt.Fprintf(deps.Stdout, "Moods: %s\n", entry.MoodList())
		return
	}

	printEntries(result.Entries)

	summary := svc.Stats.Summary()
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s    Streak: %s\n",
		summary.TotalCount, cli.Pluralize("entry", summary.TotalCount), summary.StreakLabel)
}

// printEntries writes one line per entry
func printEntries(entries []entry.Entry) {
	for _, e := range entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryWithID(e))
	}
}

// validateStorage checks the journal slot health and reports status
func validateStorage() {
	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	health, err := svc.Entry.Validate()
	if err != nil {
		fail("Failed to validate storage", err, storageHint(err))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Journal: %s\n", svc.Entry.Location())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if !health.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ No journal stored yet")
		return
	}

	if health.Malformed {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ⚠ Stored journal is not a valid entry list")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Total records:   %d\n", health.TotalRecords)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid entries:   %d\n", health.ValidEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Invalid records: %d\n", len(health.Warnings))

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Invalid records:")
		for _, warning := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatParseWarning(warning))
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Journal is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Status: ⚠ Journal has %d invalid %s\n",
			len(health.Warnings), cli.Pluralize("record", len(health.Warnings)))
	}
}

// storageHint suggests a fix for slot read and write failures
func storageHint(err error) string {
	if errors.Is(err, storage.ErrPersistenceUnavailable) {
		return "Check that the journal location is readable and writable"
	}
	return ""
}
