package service

import (
	"time"

	"github.com/xolan/vibe/internal/journal"
	"github.com/xolan/vibe/internal/stats"
)

// StatsService provides the statistics projection of the journal
type StatsService struct {
	store *journal.Store
	now   func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(store *journal.Store, now func() time.Time) *StatsService {
	return &StatsService{
		store: store,
		now:   now,
	}
}

// Summary returns total count, streak and mood breakdown as of now.
func (s *StatsService) Summary() stats.Summary {
	return stats.Summarize(s.store.Entries(), s.now())
}

// StreakLabel returns the current streak label, e.g. "3 days".
func (s *StatsService) StreakLabel() string {
	return stats.StreakLabel(s.store.Entries(), s.now())
}
