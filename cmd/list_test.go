package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/xolan/vibe/internal/config"
	"github.com/xolan/vibe/internal/storage"
)

// newFilterCmd returns a command carrying the shared filter flags set to flags.
func newFilterCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("failed to set --%s: %v", name, err)
		}
	}
	return cmd
}

func seedListJournal(t *testing.T) storage.Slot {
	t.Helper()
	slot := storage.NewMemorySlot(config.DefaultSlot)
	seed(t, slot,
		[3]string{"good", "2024-05-20", "gym session"},
		[3]string{"rough", "2024-06-05", "bad sleep"},
		[3]string{"struggling", "2024-06-08", ""},
		[3]string{"amazing", "2024-06-10", "Gym PR"},
	)
	return slot
}

func TestRunList_Filters(t *testing.T) {
	tests := []struct {
		name      string
		flags     map[string]string
		wantCount int
		wantDesc  string
	}{
		{"no filters", nil, 4, ""},
		{"single mood", map[string]string{"mood": "rough"}, 1, "mood: rough"},
		{"several moods", map[string]string{"mood": "rough,struggling"}, 2, "mood: rough, struggling"},
		{"search", map[string]string{"search": "gym"}, 2, `search: "gym"`},
		{"last days", map[string]string{"last": "7"}, 3, "Jun 4 - Jun 10, 2024"},
		{"from", map[string]string{"from": "2024-06-06"}, 2, "since Jun 6, 2024"},
		{"day first range", map[string]string{"from": "01/06/2024", "to": "06/06/2024"}, 1, "Jun 1 - Jun 6, 2024"},
		{"combined", map[string]string{"search": "gym", "mood": "good"}, 1, `mood: good; search: "gym"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(t, seedListJournal(t), "")

			runList(newFilterCmd(t, tt.flags))

			if env.exited {
				t.Fatalf("unexpected exit: %s", env.stderr.String())
			}
			output := env.stdout.String()
			if got := countEntryLines(output); got != tt.wantCount {
				t.Errorf("expected %d entries, output:\n%s", tt.wantCount, output)
			}
			if tt.wantDesc != "" && !strings.Contains(output, tt.wantDesc) {
				t.Errorf("expected description %q, output:\n%s", tt.wantDesc, output)
			}
			if !strings.Contains(output, "of 4 entries") {
				t.Errorf("expected total in footer, output:\n%s", output)
			}
		})
	}
}

// countEntryLines counts the "[id] ..." lines in list output.
func countEntryLines(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "[") {
			count++
		}
	}
	return count
}

func TestRunList_NoMatches(t *testing.T) {
	env := setupTest(t, seedListJournal(t), "")

	runList(newFilterCmd(t, map[string]string{"search": "holiday"}))

	if !strings.Contains(env.stdout.String(), `No entries match (search: "holiday")`) {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestRunList_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   map[string]string
		wantErr string
	}{
		{"bad mood", map[string]string{"mood": "meh"}, "Invalid --mood value 'meh'"},
		{"bad date", map[string]string{"from": "June"}, "Invalid date filter"},
		{"last with from", map[string]string{"last": "3", "from": "2024-06-01"}, "cannot use --last with --from or --to"},
		{"reversed range", map[string]string{"from": "2024-06-10", "to": "2024-06-01"}, "is after --to date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(t, seedListJournal(t), "")

			runList(newFilterCmd(t, tt.flags))

			if !env.exited {
				t.Error("expected exit to be called")
			}
			if !strings.Contains(env.stderr.String(), tt.wantErr) {
				t.Errorf("expected %q in stderr, got: %s", tt.wantErr, env.stderr.String())
			}
		})
	}
}
