package timeutil

import (
	"fmt"
	"regexp"
	"time"

	"github.com/xolan/vibe/internal/entry"
)

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`)
)

// ParseISODate parses a stored journal date (YYYY-MM-DD) at local midnight.
func ParseISODate(input string) (time.Time, error) {
	t, err := time.ParseInLocation(entry.DateLayout, input, time.Local)
	if err != nil {
		return time.Time{}, buildDateParseError(input)
	}
	return t, nil
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the parsed date at midnight (start of day) in local timezone.
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is preferred.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-06-10 or 10/06/2024)")
	}

	if t, err := time.ParseInLocation(entry.DateLayout, input, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, buildDateParseError(input)
}

// NormalizeDate accepts any format understood by ParseDate and returns
// the journal storage form (YYYY-MM-DD).
func NormalizeDate(input string) (string, error) {
	t, err := ParseDate(input)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-06-10 or 10/06/2024)", input)
	}
}
