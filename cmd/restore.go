package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore from a backup file",
	Long: `Restore the journal from a backup.

Backups are taken automatically before delete, clear and restore,
and when a stored journal cannot be read. Up to 3 backups are kept.
By default, restores from the most recent backup (.bak.1).
Backups are only available with the file backend.

Examples:
  vibe restore       Restore from most recent backup
  vibe restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(args []string) {
	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			fail(fmt.Sprintf("Invalid backup number '%s'", args[0]), nil, "")
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			fail(fmt.Sprintf("Backup number must be between 1 and %d (got %d)", storage.MaxBackupCount, num), nil, "")
			return
		}
		backupNum = num
	}

	svc := openServices()
	if svc == nil {
		return
	}
	defer func() { _ = svc.Close() }()

	backups, err := svc.Entry.ListBackups()
	if err != nil {
		if errors.Is(err, service.ErrBackupsUnsupported) {
			fail("Backups are not available", err, "Set backend = \"file\" in your config to use backups")
			return
		}
		fail("Failed to list backups", err, "")
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupExists := false
	for _, backup := range backups {
		if backup.Number == backupNum {
			backupExists = true
			break
		}
	}
	if !backupExists {
		fail(fmt.Sprintf("Backup %d does not exist", backupNum), nil, "")
		return
	}

	result, err := svc.Entry.Restore(backupNum)
	if err != nil {
		fail("Failed to restore backup", err, "")
		return
	}
	reportLoad(result)

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d (%d entries)\n", backupNum, svc.Entry.Count())
}
