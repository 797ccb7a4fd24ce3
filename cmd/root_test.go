package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/config"
	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/storage"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

// testEnv captures command output and the exit status.
type testEnv struct {
	slot     storage.Slot
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode int
	exited   bool
}

// setupTest installs test dependencies that open services over slot.
// Flag globals are reset before and after the test.
func setupTest(t *testing.T, slot storage.Slot, stdin string) *testEnv {
	t.Helper()
	env := &testEnv{
		slot:   slot,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	configDir := t.TempDir()

	SetDeps(&Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(stdin),
		Exit: func(code int) {
			env.exitCode = code
			env.exited = true
		},
		Now: func() time.Time { return testNow },
		OpenServices: func(opts service.Options) (*service.Services, error) {
			svc := service.NewServicesWithSlot(slot, filepath.Join(configDir, config.ConfigFile),
				config.DefaultConfig(), nil, func() time.Time { return testNow })
			// Like service.NewServices, an unreadable slot is reported
			// through LastLoad rather than as an error.
			_, _ = svc.Entry.Load()
			return svc, nil
		},
	})

	resetFlags()
	t.Cleanup(func() {
		ResetDeps()
		resetFlags()
	})
	return env
}

func resetFlags() {
	configPath = ""
	verbose = false
	dateFlag = ""
	yesFlag = false
	clearYesFlag = false
}

// seed adds entries to slot through the service layer.
func seed(t *testing.T, slot storage.Slot, entries ...[3]string) []entry.Entry {
	t.Helper()
	svc := service.NewServicesWithSlot(slot, "", config.DefaultConfig(), nil, func() time.Time { return testNow })
	if _, err := svc.Entry.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var created []entry.Entry
	for _, e := range entries {
		c, err := svc.Entry.Create(e[0], e[1], e[2])
		if err != nil {
			t.Fatalf("Create(%v) failed: %v", e, err)
		}
		created = append(created, c)
	}
	return created
}

// storedEntries reads the slot back through a fresh service.
func storedEntries(t *testing.T, slot storage.Slot) []entry.Entry {
	t.Helper()
	svc := service.NewServicesWithSlot(slot, "", config.DefaultConfig(), nil, nil)
	if _, err := svc.Entry.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc.Entry.List(nil).Entries
}

func TestCreateEntry_Success(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	env := setupTest(t, slot, "")

	createEntry([]string{"good", "long", "walk"})

	if env.exited {
		t.Fatalf("unexpected exit, stderr: %s", env.stderr.String())
	}
	output := env.stdout.String()
	if !strings.Contains(output, "Logged: 🙂 Good on Mon, Jun 10, 2024 (long walk)") {
		t.Errorf("unexpected output: %s", output)
	}
	if !strings.Contains(output, "Current streak: 1 day") {
		t.Errorf("expected streak in output, got: %s", output)
	}

	stored := storedEntries(t, slot)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(stored))
	}
	if stored[0].Mood != entry.MoodGood || stored[0].Notes != "long walk" || stored[0].Date != "2024-06-10" {
		t.Errorf("unexpected stored entry: %+v", stored[0])
	}
}

func TestCreateEntry_WithoutNotes(t *testing.T) {
	env := setupTest(t, storage.NewMemorySlot(config.DefaultSlot), "")

	createEntry([]string{"OKAY"})

	if env.exited {
		t.Fatalf("unexpected exit, stderr: %s", env.stderr.String())
	}
	if strings.Contains(env.stdout.String(), "(") {
		t.Errorf("expected no notes in output, got: %s", env.stdout.String())
	}
}

func TestCreateEntry_DateFlag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso", "2024-06-08", "2024-06-08"},
		{"day first", "08/06/2024", "2024-06-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := storage.NewMemorySlot(config.DefaultSlot)
			env := setupTest(t, slot, "")
			dateFlag = tt.input

			createEntry([]string{"rough"})

			if env.exited {
				t.Fatalf("unexpected exit, stderr: %s", env.stderr.String())
			}
			stored := storedEntries(t, slot)
			if len(stored) != 1 || stored[0].Date != tt.want {
				t.Errorf("expected date %s, got %+v", tt.want, stored)
			}
			if !strings.Contains(env.stdout.String(), "Current streak: 0 days") {
				t.Errorf("expected 0 day streak for a past entry, got: %s", env.stdout.String())
			}
		})
	}
}

func TestCreateEntry_InvalidDate(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	env := setupTest(t, slot, "")
	dateFlag = "yesterday-ish"

	createEntry([]string{"good"})

	if !env.exited || env.exitCode != 1 {
		t.Error("expected exit with status 1")
	}
	if !strings.Contains(env.stderr.String(), "Invalid date 'yesterday-ish'") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
	if len(storedEntries(t, slot)) != 0 {
		t.Error("expected nothing stored")
	}
}

func TestCreateEntry_InvalidMood(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	env := setupTest(t, slot, "")

	createEntry([]string{"ecstatic", "big", "day"})

	if !env.exited {
		t.Fatal("expected exit to be called")
	}
	stderr := env.stderr.String()
	if !strings.Contains(stderr, "Unknown mood 'ecstatic'") {
		t.Errorf("expected unknown mood error, got: %s", stderr)
	}
	if !strings.Contains(stderr, "Hint: Pick one of: amazing, good, okay, rough, struggling") {
		t.Errorf("expected mood hint, got: %s", stderr)
	}
	if len(storedEntries(t, slot)) != 0 {
		t.Error("expected nothing stored")
	}
}

func TestCreateEntry_WriteFailure(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	slot.WriteErr = errors.New("quota exceeded")
	env := setupTest(t, slot, "")

	createEntry([]string{"good"})

	if !env.exited {
		t.Fatal("expected exit to be called")
	}
	stderr := env.stderr.String()
	if !strings.Contains(stderr, "Failed to save entry") || !strings.Contains(stderr, "quota exceeded") {
		t.Errorf("unexpected stderr: %s", stderr)
	}
}

func TestOpenServices_ReadFailure(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	slot.ReadErr = errors.New("access denied")
	env := setupTest(t, slot, "")

	showJournal()

	if env.exited {
		t.Fatalf("unexpected exit: %s", env.stderr.String())
	}
	stderr := env.stderr.String()
	if !strings.Contains(stderr, "could not be read") || !strings.Contains(stderr, "vibe validate") {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(env.stdout.String(), "No entries yet") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestCreateEntry_UnreadableJournalNotOverwritten(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	seed(t, slot, [3]string{"good", "2024-06-09", "keep me"})
	slot.ReadErr = errors.New("access denied")
	env := setupTest(t, slot, "")

	createEntry([]string{"okay"})

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit with status 1")
	}
	if !strings.Contains(env.stderr.String(), "Failed to save entry") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}

	slot.ReadErr = nil
	stored := storedEntries(t, slot)
	if len(stored) != 1 || stored[0].Notes != "keep me" {
		t.Errorf("expected the stored journal to be untouched, got %+v", stored)
	}
}

func TestShowJournal_Empty(t *testing.T) {
	env := setupTest(t, storage.NewMemorySlot(config.DefaultSlot), "")

	showJournal()

	if !strings.Contains(env.stdout.String(), "No entries yet") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestShowJournal_WithEntries(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	created := seed(t, slot,
		[3]string{"good", "2024-06-08", "first"},
		[3]string{"okay", "2024-06-09", ""},
		[3]string{"amazing", "", "today"},
	)
	env := setupTest(t, slot, "")

	showJournal()

	output := env.stdout.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 3 entries plus footer, got:\n%s", output)
	}
	// Newest added first
	if !strings.HasPrefix(lines[0], "[") || !strings.Contains(lines[0], "today") {
		t.Errorf("expected newest entry first, got: %s", lines[0])
	}
	if !strings.Contains(output, "Total: 3 entries    Streak: 3 days") {
		t.Errorf("unexpected footer: %s", output)
	}
	for _, e := range created {
		if !strings.Contains(output, cli.FormatEntryWithID(e)) {
			t.Errorf("expected %q in output", cli.FormatEntryWithID(e))
		}
	}
}

func TestShowJournal_SkippedRecordsWarning(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	if err := slot.Write([]byte(`[
  {"id": 1, "date": "2024-06-10", "mood": "good", "notes": "", "timestamp": "2024-06-10T08:00:00Z"},
  {"id": 2, "date": "2024-06-09", "mood": "fantastic", "notes": "", "timestamp": "2024-06-09T08:00:00Z"}
]`)); err != nil {
		t.Fatal(err)
	}
	env := setupTest(t, slot, "")

	showJournal()

	if env.exited {
		t.Fatalf("unexpected exit: %s", env.stderr.String())
	}
	if !strings.Contains(env.stderr.String(), "Skipped 1 invalid record") {
		t.Errorf("expected skipped record warning, got: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Total: 1 entry") {
		t.Errorf("expected valid entry to be listed, got: %s", env.stdout.String())
	}
}

func TestShowJournal_MalformedSlot(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	if err := slot.Write([]byte(`{"not": "a list"}`)); err != nil {
		t.Fatal(err)
	}
	env := setupTest(t, slot, "")

	showJournal()

	if env.exited {
		t.Fatalf("malformed data must not be fatal: %s", env.stderr.String())
	}
	if !strings.Contains(env.stderr.String(), "not a valid entry list") {
		t.Errorf("expected malformed warning, got: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "No entries yet") {
		t.Errorf("expected empty journal, got: %s", env.stdout.String())
	}
}

func TestValidateStorage_NoJournal(t *testing.T) {
	env := setupTest(t, storage.NewMemorySlot(config.DefaultSlot), "")

	validateStorage()

	if !strings.Contains(env.stdout.String(), "No journal stored yet") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestValidateStorage_Healthy(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	seed(t, slot, [3]string{"good", "", ""}, [3]string{"rough", "2024-06-01", ""})
	env := setupTest(t, slot, "")

	validateStorage()

	output := env.stdout.String()
	if !strings.Contains(output, "Valid entries:   2") {
		t.Errorf("expected 2 valid entries, got: %s", output)
	}
	if !strings.Contains(output, "Journal is healthy") {
		t.Errorf("expected healthy status, got: %s", output)
	}
}

func TestValidateStorage_InvalidRecords(t *testing.T) {
	slot := storage.NewMemorySlot(config.DefaultSlot)
	if err := slot.Write([]byte(`[{"id": 1, "date": "2024-06-10", "mood": "good"}, {"date": "2024-06-09", "mood": "good"}]`)); err != nil {
		t.Fatal(err)
	}
	env := setupTest(t, slot, "")

	validateStorage()

	output := env.stdout.String()
	if !strings.Contains(output, "Invalid records: 1") {
		t.Errorf("expected 1 invalid record, got: %s", output)
	}
	if !strings.Contains(output, "Record 2:") {
		t.Errorf("expected record 2 in warnings, got: %s", output)
	}
	if !strings.Contains(output, "Journal has 1 invalid record") {
		t.Errorf("expected warning status, got: %s", output)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-06-10")
	defer SetVersionInfo("", "", "")

	if rootCmd.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", rootCmd.Version)
	}
}
