package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/vibe/internal/entry"
)

func TestEncodeEntries_Empty(t *testing.T) {
	data, err := EncodeEntries(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestEncodeDecode_PreservesFieldsAndOrder(t *testing.T) {
	ts := time.Date(2024, 6, 10, 8, 30, 0, 123000000, time.UTC)
	entries := []entry.Entry{
		{ID: 2, Date: "2024-06-10", Mood: entry.MoodGood, Notes: "walk", Timestamp: ts},
		{ID: 1, Date: "2024-06-09", Mood: entry.MoodRough, Timestamp: ts.Add(-time.Hour)},
	}

	data, err := EncodeEntries(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mood": "good"`)
	assert.Contains(t, string(data), `"timestamp": "2024-06-10T08:30:00.123Z"`)

	result, err := DecodeEntries(data)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, entries, result.Entries)
}

func TestEncodeEntries_TimestampLayout(t *testing.T) {
	stored := `[
  {
    "id": 1718013600000,
    "date": "2024-06-10",
    "mood": "good",
    "notes": "",
    "timestamp": "2024-06-10T10:00:00.000Z"
  },
  {
    "id": 1,
    "date": "2024-06-09",
    "mood": "okay",
    "notes": "",
    "timestamp": null
  }
]
`
	result, err := DecodeEntries([]byte(stored))
	require.NoError(t, err)
	require.Empty(t, result.Warnings)

	data, err := EncodeEntries(result.Entries)
	require.NoError(t, err)
	assert.Equal(t, stored, string(data))
}

func TestEncodeEntries_NormalizesToUTC(t *testing.T) {
	ts := time.Date(2024, 6, 10, 12, 0, 0, 456789000, time.FixedZone("CEST", 2*60*60))
	data, err := EncodeEntries([]entry.Entry{{ID: 1, Date: "2024-06-10", Mood: entry.MoodGood, Timestamp: ts}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp": "2024-06-10T10:00:00.456Z"`)
}

func TestDecodeEntries_EmptyInputs(t *testing.T) {
	for _, input := range []string{"", "   \n", "null", "[]"} {
		result, err := DecodeEntries([]byte(input))
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, result.Entries, "input %q", input)
		assert.NotNil(t, result.Entries, "input %q", input)
	}
}

func TestDecodeEntries_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `[{"id":1`},
		{"object", `{"id":1}`},
		{"string", `"entries"`},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DecodeEntries([]byte(tt.input))
			assert.True(t, errors.Is(err, ErrMalformedData))
			assert.Empty(t, result.Entries)
		})
	}
}

func TestDecodeEntries_SkipsBadRecords(t *testing.T) {
	input := `[
		{"id":5,"date":"2024-06-10","mood":"amazing","notes":"","timestamp":"2024-06-10T09:00:00Z"},
		{"id":4,"date":"2024-06-10","mood":"ecstatic","notes":"","timestamp":"2024-06-10T08:00:00Z"},
		{"id":3,"date":"June 9","mood":"okay","notes":"","timestamp":"2024-06-09T08:00:00Z"},
		{"date":"2024-06-09","mood":"okay"},
		{"id":5,"date":"2024-06-08","mood":"okay","notes":"","timestamp":"2024-06-08T08:00:00Z"},
		42,
		{"id":1,"date":"2024-06-07","mood":"struggling","notes":"tired"}
	]`

	result, err := DecodeEntries([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, int64(5), result.Entries[0].ID)
	assert.Equal(t, int64(1), result.Entries[1].ID)
	assert.True(t, result.Entries[1].Timestamp.IsZero())

	require.Len(t, result.Warnings, 5)
	indexes := make([]int, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		indexes = append(indexes, w.Index)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, indexes)
	assert.Contains(t, result.Warnings[0].Error, "invalid mood")
	assert.Contains(t, result.Warnings[1].Error, "invalid date")
	assert.Contains(t, result.Warnings[2].Error, "missing id")
	assert.Contains(t, result.Warnings[3].Error, "duplicate id 5")
	assert.Equal(t, "42", result.Warnings[4].Content)
}

func TestValidateSlot(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		h, err := ValidateSlot(NewMemorySlot("s"))
		require.NoError(t, err)
		assert.False(t, h.Exists)
		assert.True(t, h.Healthy())
	})

	t.Run("malformed", func(t *testing.T) {
		slot := NewMemorySlot("s")
		require.NoError(t, slot.Write([]byte("{")))
		h, err := ValidateSlot(slot)
		require.NoError(t, err)
		assert.True(t, h.Exists)
		assert.True(t, h.Malformed)
		assert.False(t, h.Healthy())
	})

	t.Run("warnings", func(t *testing.T) {
		slot := NewMemorySlot("s")
		require.NoError(t, slot.Write([]byte(`[{"id":1,"date":"2024-06-10","mood":"good"},{"id":2,"date":"2024-06-10","mood":"meh"}]`)))
		h, err := ValidateSlot(slot)
		require.NoError(t, err)
		assert.Equal(t, 2, h.TotalRecords)
		assert.Equal(t, 1, h.ValidEntries)
		assert.Len(t, h.Warnings, 1)
		assert.False(t, h.Healthy())
	})

	t.Run("unreadable", func(t *testing.T) {
		slot := NewMemorySlot("s")
		slot.ReadErr = errors.New("denied")
		_, err := ValidateSlot(slot)
		assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	})
}
