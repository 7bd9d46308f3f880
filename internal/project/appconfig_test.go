package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/RoomFit/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultBudget = 2500
	cfg.DefaultCountry = model.CountryCA
	cfg.Padding = 5
	cfg.RecentProjects = []string{"/tmp/bedroom.roomfit", "/tmp/office.roomfit"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultBudget != 2500 {
		t.Errorf("expected DefaultBudget=2500, got %f", loaded.DefaultBudget)
	}
	if loaded.DefaultCountry != model.CountryCA {
		t.Errorf("expected DefaultCountry=CA, got %s", loaded.DefaultCountry)
	}
	if loaded.Padding != 5 {
		t.Errorf("expected Padding=5, got %f", loaded.Padding)
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.UnitsPerFoot != defaults.UnitsPerFoot {
		t.Errorf("expected default units per foot %f, got %f", defaults.UnitsPerFoot, cfg.UnitsPerFoot)
	}
	if cfg.DefaultBudget != 5000 {
		t.Errorf("expected default budget 5000, got %f", cfg.DefaultBudget)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_budget":1200}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultBudget != 1200 {
		t.Errorf("expected DefaultBudget=1200, got %f", cfg.DefaultBudget)
	}
	if cfg.MaxItems != 8 {
		t.Errorf("expected MaxItems=8 from defaults, got %d", cfg.MaxItems)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigNilRecentProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	data := []byte(`{"default_budget":3000,"recent_projects":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil after loading")
	}
}

func TestConfigPaths(t *testing.T) {
	dir := DefaultConfigDir()
	if !strings.HasSuffix(dir, ".roomfit") {
		t.Errorf("unexpected config dir %q", dir)
	}
	if got, want := ConfigPath(dir), filepath.Join(dir, "config.json"); got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
	if got, want := TemplatePath(dir), filepath.Join(dir, "templates.json"); got != want {
		t.Errorf("TemplatePath = %q, want %q", got, want)
	}
}

func TestLoadAppConfigZeroSpacing(t *testing.T) {
	dir := t.TempDir()

	zero := filepath.Join(dir, "zero.json")
	if err := os.WriteFile(zero, []byte(`{"padding": 0, "margin": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAppConfig(zero)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	s := model.DefaultSettings()
	cfg.ApplyToSettings(&s)
	if s.Padding != 0 || s.Margin != 0 {
		t.Errorf("expected zero padding and margin, got %v and %v", s.Padding, s.Margin)
	}

	partial := filepath.Join(dir, "partial.json")
	if err := os.WriteFile(partial, []byte(`{"default_budget": 800}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadAppConfig(partial)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	s = model.DefaultSettings()
	cfg.ApplyToSettings(&s)
	if s != model.DefaultSettings() {
		t.Errorf("missing fields should keep the stock settings, got %+v", s)
	}
}

func TestImportAllDataKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"version": "1.0", "config": {"default_budget": 800}}`), 0644); err != nil {
		t.Fatal(err)
	}
	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.Padding != 10 || backup.Config.Margin != 10 {
		t.Errorf("expected default spacing, got padding %v margin %v", backup.Config.Padding, backup.Config.Margin)
	}
	if backup.Config.DefaultBudget != 800 {
		t.Errorf("expected budget 800, got %v", backup.Config.DefaultBudget)
	}
}
