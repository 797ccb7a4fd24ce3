package service

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/vibe/internal/config"
	"github.com/xolan/vibe/internal/journal"
	"github.com/xolan/vibe/internal/logging"
	"github.com/xolan/vibe/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Entry  *EntryService
	Stats  *StatsService
	Config *ConfigService
	Logger *zap.Logger

	slot storage.Slot
	now  func() time.Time
}

// Options controls how NewServices locates configuration and logs.
type Options struct {
	ConfigPath string // Empty means the default config location
	Verbose    bool
}

// NewServices loads the configuration, opens the configured slot and loads
// the journal from it. An unreadable slot is not an error here; see
// journal.LoadResult.Unavailable.
func NewServices(opts Options) (*Services, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config location: %w", err)
		}
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Verbose: opts.Verbose,
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return nil, err
	}

	slot, err := OpenSlot(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("slot opened", zap.String("backend", cfg.Backend), zap.String("slot", slot.Name()))

	services := NewServicesWithSlot(slot, configPath, cfg, logger, time.Now)
	if _, err := services.Entry.Load(); err != nil {
		// The session continues in memory; Entry.LastLoad().Unavailable
		// tells the front-end that changes will not be saved.
		logger.Warn("journal unreadable, continuing without saving", zap.Error(err))
	}
	return services, nil
}

// NewServicesWithSlot creates a Services instance around an existing slot
// (useful for testing). The journal is not loaded; call Entry.Load.
func NewServicesWithSlot(slot storage.Slot, configPath string, cfg config.Config, logger *zap.Logger, now func() time.Time) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	store := journal.New(slot, journal.WithClock(now), journal.WithLogger(logger))

	return &Services{
		Entry:  NewEntryService(store, slot, logger),
		Stats:  NewStatsService(store, now),
		Config: NewConfigService(configPath, cfg),
		Logger: logger,
		slot:   slot,
		now:    now,
	}
}

// OpenSlot opens the persistence slot selected by cfg.
func OpenSlot(cfg config.Config) (storage.Slot, error) {
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine data directory: %w", err)
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		slot, err := storage.OpenSQLiteSlot(filepath.Join(dir, storage.DatabaseFile), cfg.Slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrPersistenceUnavailable, err)
		}
		return slot, nil
	default:
		return storage.NewFileSlot(dir, cfg.Slot), nil
	}
}

// Now returns the current time from the services clock.
func (s *Services) Now() time.Time {
	return s.now()
}

// Close releases the slot (if it holds resources) and flushes the logger.
func (s *Services) Close() error {
	_ = s.Logger.Sync()
	if c, ok := s.slot.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
