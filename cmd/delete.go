package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/service"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry by id",
	Long: `Delete a journal entry by its id.
The id is shown in brackets in the list output.
A confirmation prompt will be shown unless --yes is specified.
The journal is backed up before the entry is removed.

Example:
  vibe delete 1718012345678
  vibe delete 1718012345678 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

// deleteEntry handles the deletion of a journal entry
func deleteEntry(idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fail(fmt.Sprintf("Invalid id '%s'. Id must be a number", idStr), nil, "Run 'vibe list' to see entry ids")
		return
	}

	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	e, err := svc.Entry.Get(id)
	if err != nil {
		fail(fmt.Sprintf("No entry with id %d", id), nil, "Run 'vibe list' to see entry ids")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatEntry(e))

	if !yesFlag && !promptConfirmation("Delete this entry?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
		return
	}

	deleted, err := svc.Entry.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			fail(fmt.Sprintf("No entry with id %d", id), nil, "")
			return
		}
		failWrite("delete entry", err, svc)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", cli.FormatEntry(deleted))
}
