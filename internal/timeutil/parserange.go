package timeutil

import (
	"fmt"
	"time"
)

// ParseDateRangeFlags parses --from/--to/--last flags relative to now.
// If lastDays > 0 the range is the last N calendar days ending today.
// Zero start or end values mean the range is open on that side.
func ParseDateRangeFlags(fromStr, toStr string, lastDays int, now time.Time) (start, end time.Time, err error) {
	if lastDays < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid number of days: must be positive, got %d", lastDays)
	}
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot use --last with --from or --to")
	}

	if lastDays > 0 {
		end = EndOfDay(now)
		start = StartOfDay(now.AddDate(0, 0, -(lastDays - 1)))
		return start, end, nil
	}

	if fromStr != "" {
		start, err = ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		toDate, err := ParseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(toDate)
	}

	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			FormatDate(start), FormatDate(end))
	}

	return start, end, nil
}
