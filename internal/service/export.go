package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xolan/vibe/internal/entry"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []string{FormatJSON, FormatCSV, FormatYAML}

// ExportMetadata describes an export document.
type ExportMetadata struct {
	ExportTimestamp time.Time         `json:"export_timestamp" yaml:"export_timestamp"`
	TotalEntries    int               `json:"total_entries" yaml:"total_entries"`
	FilterCriteria  map[string]string `json:"filter_criteria" yaml:"filter_criteria"`
}

type exportEntry struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Mood      string    `json:"mood" yaml:"mood"`
	Emoji     string    `json:"emoji" yaml:"emoji"`
	Notes     string    `json:"notes" yaml:"notes"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

type exportDocument struct {
	Metadata ExportMetadata `json:"metadata" yaml:"metadata"`
	Entries  []exportEntry  `json:"entries" yaml:"entries"`
}

// Export writes entries to w in the given format (json, csv or yaml).
// JSON and YAML documents carry metadata; CSV is a header plus one row per entry.
func Export(w io.Writer, format string, entries []entry.Entry, meta ExportMetadata) error {
	rows := make([]exportEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, exportEntry{
			ID:        e.ID,
			Date:      e.Date,
			Mood:      string(e.Mood),
			Emoji:     e.Mood.Emoji(),
			Notes:     e.Notes,
			Timestamp: e.Timestamp,
		})
	}
	meta.TotalEntries = len(rows)
	if meta.FilterCriteria == nil {
		meta.FilterCriteria = map[string]string{}
	}
	doc := exportDocument{Metadata: meta, Entries: rows}

	switch strings.ToLower(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()

	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"id", "date", "mood", "emoji", "notes", "timestamp"}); err != nil {
			return err
		}
		for _, r := range rows {
			row := []string{
				strconv.FormatInt(r.ID, 10),
				r.Date,
				r.Mood,
				r.Emoji,
				r.Notes,
				r.Timestamp.Format(time.RFC3339),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()

	default:
		return fmt.Errorf("unsupported export format %q (use one of: %s)", format, strings.Join(ExportFormats, ", "))
	}
}
