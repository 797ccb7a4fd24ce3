package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xolan/vibe/internal/entry"
)

func exportFixture() []entry.Entry {
	ts := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	return []entry.Entry{
		{ID: 2, Date: "2024-06-10", Mood: entry.MoodAmazing, Notes: "sunny, warm", Timestamp: ts},
		{ID: 1, Date: "2024-06-09", Mood: entry.MoodRough, Timestamp: ts.Add(-24 * time.Hour)},
	}
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	meta := ExportMetadata{
		ExportTimestamp: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		FilterCriteria:  map[string]string{"mood": "amazing"},
	}
	if err := Export(&buf, FormatJSON, exportFixture(), meta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc exportDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Metadata.TotalEntries != 2 {
		t.Errorf("expected total_entries 2, got %d", doc.Metadata.TotalEntries)
	}
	if doc.Metadata.FilterCriteria["mood"] != "amazing" {
		t.Errorf("expected mood filter criteria, got %v", doc.Metadata.FilterCriteria)
	}
	if doc.Entries[0].Emoji != "😄" || doc.Entries[1].Mood != "rough" {
		t.Errorf("unexpected entries: %+v", doc.Entries)
	}
}

func TestExport_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, "CSV", exportFixture(), ExportMetadata{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "id,date,mood,emoji,notes,timestamp" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][4] != "sunny, warm" {
		t.Errorf("expected notes with comma preserved, got %q", records[1][4])
	}
	if records[1][5] != "2024-06-10T09:00:00Z" {
		t.Errorf("unexpected timestamp: %q", records[1][5])
	}
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, FormatYAML, exportFixture(), ExportMetadata{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc exportDocument
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(doc.Entries) != 2 || doc.Entries[0].Notes != "sunny, warm" {
		t.Errorf("unexpected entries: %+v", doc.Entries)
	}
	if !strings.Contains(buf.String(), "total_entries: 2") {
		t.Errorf("expected metadata in output, got:\n%s", buf.String())
	}
}

func TestExport_EmptyAndUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, FormatJSON, nil, ExportMetadata{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"entries": []`) {
		t.Errorf("expected empty entries array, got:\n%s", buf.String())
	}

	if err := Export(&buf, "xml", nil, ExportMetadata{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
