package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/vibe/internal/config"
)

// blockedPath returns a config path whose parent is a regular file, so it can never be created.
func blockedPath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(blocker, "config.toml")
}

func TestConfigService_GetAndPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "nord"
	svc := NewConfigService("/tmp/test/config.toml", cfg)

	if svc.Get() != cfg {
		t.Errorf("expected %+v, got %+v", cfg, svc.Get())
	}
	if svc.GetPath() != "/tmp/test/config.toml" {
		t.Errorf("expected path '/tmp/test/config.toml', got %q", svc.GetPath())
	}
}

func TestConfigService_Exists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		t.Error("expected Exists() to return false")
	}

	if err := os.WriteFile(configPath, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	if !svc.Exists() {
		t.Error("expected Exists() to return true")
	}
}

func TestConfigService_Update(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	newCfg := config.DefaultConfig()
	newCfg.Backend = "SQLITE"
	newCfg.Theme = "dracula"

	if err := svc.Update(newCfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.Get()
	if result.Backend != config.BackendSQLite {
		t.Errorf("expected normalized backend 'sqlite', got %q", result.Backend)
	}

	// The written file loads back to the same configuration
	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if loaded != result {
		t.Errorf("expected %+v, got %+v", result, loaded)
	}
}

func TestConfigService_Update_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	invalidCfg := config.DefaultConfig()
	invalidCfg.Backend = "redis"

	if err := svc.Update(invalidCfg); err == nil {
		t.Error("expected error for invalid config")
	}
	if svc.Get().Backend != config.BackendFile {
		t.Error("invalid config should not replace the current one")
	}
}

func TestConfigService_Init(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "# vibe configuration file") {
		t.Error("expected sample config content after Init")
	}
}

func TestConfigService_Init_AlreadyExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Init(); err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestConfigService_Reload(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(`slot = "work"`), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.Get().Slot != "work" {
		t.Errorf("expected Slot 'work', got %q", svc.Get().Slot)
	}
}

func TestConfigService_Reload_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("invalid toml {{{"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Reload(); err == nil {
		t.Error("expected error for invalid config file")
	}
}

func TestConfigService_WriteErrors(t *testing.T) {
	svc := NewConfigService(blockedPath(t), config.DefaultConfig())

	if err := svc.Update(config.DefaultConfig()); err == nil {
		t.Error("expected Update error for unwritable path")
	}
	if err := svc.Init(); err == nil {
		t.Error("expected Init error for unwritable path")
	}
}
