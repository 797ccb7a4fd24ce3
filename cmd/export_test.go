package cmd

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/xolan/vibe/internal/service"
)

type exportedDoc struct {
	Metadata struct {
		TotalEntries   int               `json:"total_entries" yaml:"total_entries"`
		FilterCriteria map[string]string `json:"filter_criteria" yaml:"filter_criteria"`
	} `json:"metadata" yaml:"metadata"`
	Entries []struct {
		ID    int64  `json:"id" yaml:"id"`
		Date  string `json:"date" yaml:"date"`
		Mood  string `json:"mood" yaml:"mood"`
		Notes string `json:"notes" yaml:"notes"`
	} `json:"entries" yaml:"entries"`
}

func runExport(t *testing.T, format string, flags map[string]string) *testEnv {
	t.Helper()
	env := setupTest(t, seedListJournal(t), "")

	cmd := newExportFormatCmd(format)
	addFilterFlags(cmd)
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("failed to set --%s: %v", name, err)
		}
	}
	exportEntries(cmd, format)

	if env.exited {
		t.Fatalf("unexpected exit: %s", env.stderr.String())
	}
	return env
}

func TestExportJSON(t *testing.T) {
	env := runExport(t, service.FormatJSON, map[string]string{"mood": "rough,struggling"})

	var doc exportedDoc
	if err := json.Unmarshal(env.stdout.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, env.stdout.String())
	}
	if doc.Metadata.TotalEntries != 2 || len(doc.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d (%d)", len(doc.Entries), doc.Metadata.TotalEntries)
	}
	if doc.Metadata.FilterCriteria["mood"] != "rough,struggling" {
		t.Errorf("unexpected filter criteria: %v", doc.Metadata.FilterCriteria)
	}
	for _, e := range doc.Entries {
		if e.Mood != "rough" && e.Mood != "struggling" {
			t.Errorf("unexpected mood %s", e.Mood)
		}
	}
}

func TestExportYAML(t *testing.T) {
	env := runExport(t, service.FormatYAML, map[string]string{"last": "7"})

	var doc exportedDoc
	if err := yaml.Unmarshal(env.stdout.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, env.stdout.String())
	}
	if len(doc.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(doc.Entries))
	}
	if doc.Metadata.FilterCriteria["from"] != "2024-06-04" || doc.Metadata.FilterCriteria["to"] != "2024-06-10" {
		t.Errorf("unexpected filter criteria: %v", doc.Metadata.FilterCriteria)
	}
}

func TestExportCSV(t *testing.T) {
	env := runExport(t, service.FormatCSV, nil)

	records, err := csv.NewReader(strings.NewReader(env.stdout.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV output: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "id,date,mood,emoji,notes,timestamp" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "amazing" || records[1][4] != "Gym PR" {
		t.Errorf("expected newest entry first, got %v", records[1])
	}
}

func TestExport_InvalidFilter(t *testing.T) {
	env := setupTest(t, seedListJournal(t), "")

	cmd := newExportFormatCmd(service.FormatJSON)
	addFilterFlags(cmd)
	_ = cmd.Flags().Set("mood", "ecstatic")
	exportEntries(cmd, service.FormatJSON)

	if !env.exited {
		t.Error("expected exit to be called")
	}
	if env.stdout.Len() != 0 {
		t.Errorf("expected no output, got: %s", env.stdout.String())
	}
}

func TestExportCmd_Subcommands(t *testing.T) {
	for _, format := range service.ExportFormats {
		found := false
		for _, sub := range exportCmd.Commands() {
			if sub.Name() == format {
				found = true
				if sub.Flags().Lookup("mood") == nil {
					t.Errorf("export %s is missing filter flags", format)
				}
			}
		}
		if !found {
			t.Errorf("expected export %s subcommand", format)
		}
	}
}
