package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/cli"
)

var clearYesFlag bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all journal entries",
	Long: `Delete every journal entry.
A confirmation prompt will be shown unless --yes is specified.
The journal is backed up first, so 'vibe restore' can bring the entries back.

Example:
  vibe clear
  vibe clear --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		clearEntries()
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// clearEntries handles the clear command logic
func clearEntries() {
	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	count := svc.Entry.Count()
	if count == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to clear")
		return
	}

	question := fmt.Sprintf("Delete all %d %s?", count, cli.Pluralize("entry", count))
	if !clearYesFlag && !promptConfirmation(question) {
		_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
		return
	}

	n, err := svc.Entry.Clear()
	if err != nil {
		failWrite("clear entries", err, svc)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Cleared %d %s\n", n, cli.Pluralize("entry", n))
}
