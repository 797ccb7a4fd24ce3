package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/service"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journal entries to various formats",
	Long: `Export journal entries for backup, migration or analysis.

Available formats:
  json    Entries with export metadata
  csv     One row per entry with a header
  yaml    Entries with export metadata

All formats accept the same filters as 'vibe list'.

Examples:
  vibe export json > journal.json
  vibe export csv --last 30 > month.csv
  vibe export yaml --mood rough,struggling`,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	for _, format := range service.ExportFormats {
		sub := newExportFormatCmd(format)
		addFilterFlags(sub)
		exportCmd.AddCommand(sub)
	}
}

// newExportFormatCmd builds the export subcommand for one format
func newExportFormatCmd(format string) *cobra.Command {
	return &cobra.Command{
		Use:   format,
		Short: fmt.Sprintf("Export journal entries as %s", strings.ToUpper(format)),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exportEntries(cmd, format)
		},
	}
}

// exportEntries writes the filtered journal to stdout in the given format
func exportEntries(cmd *cobra.Command, format string) {
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
	meta := service.ExportMetadata{
		ExportTimestamp: deps.Now().UTC(),
		FilterCriteria:  filterCriteria(f),
	}

	if err := service.Export(deps.Stdout, format, result.Entries, meta); err != nil {
		fail(fmt.Sprintf("Failed to write %s output", strings.ToUpper(format)), err, "")
		return
	}
}
