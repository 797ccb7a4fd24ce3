package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/journal"
	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/storage"
)

// fail prints an error block to stderr and exits with status 1.
// details and hint are omitted when empty.
func fail(message string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// failWrite reports a failed save. The change was applied in memory only.
func failWrite(action string, err error, svc *service.Services) {
	fail(fmt.Sprintf("Failed to %s", action), err,
		fmt.Sprintf("Check that the journal location is writable: %s", svc.Entry.Location()))
}

// openServices opens the journal using the global flags. It returns nil
// after reporting the error when the journal cannot be opened.
func openServices() *service.Services {
	svc, err := deps.OpenServices(service.Options{ConfigPath: configPath, Verbose: verbose})
	if err != nil {
		hint := "Check your config file and that the data directory is accessible"
		if errors.Is(err, storage.ErrPersistenceUnavailable) {
			hint = "The journal could not be read; check file permissions or run 'vibe validate'"
		}
		fail("Failed to open journal", err, hint)
		return nil
	}
	reportLoad(svc.Entry.LastLoad())
	return svc
}

// reportLoad warns on stderr about records skipped or discarded while loading.
func reportLoad(result journal.LoadResult) {
	if result.Unavailable {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: The journal could not be read; changes in this session will not be saved")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check file permissions or run 'vibe validate'")
		_, _ = fmt.Fprintln(deps.Stderr)
	}
	if result.Malformed {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Stored journal is not a valid entry list and was ignored")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: A copy is kept before the next change is saved; see 'vibe restore'")
		_, _ = fmt.Fprintln(deps.Stderr)
	}
	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Skipped %d invalid %s in storage:\n",
			len(result.Warnings), cli.Pluralize("record", len(result.Warnings)))
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stderr, cli.FormatParseWarning(w))
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}
}

// moodHint is shown after mood validation errors.
func moodHint() string {
	return "Pick one of: " + entry.MoodList()
}

// promptConfirmation asks a yes/no question on stdout.
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation(question string) bool {
	_, _ = fmt.Fprintf(deps.Stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
