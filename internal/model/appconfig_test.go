package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.UnitsPerFoot != defaults.UnitsPerFoot {
		t.Errorf("UnitsPerFoot mismatch: config=%f settings=%f", cfg.UnitsPerFoot, defaults.UnitsPerFoot)
	}
	if cfg.Padding != defaults.Padding {
		t.Errorf("Padding mismatch: config=%f settings=%f", cfg.Padding, defaults.Padding)
	}
	if cfg.MaxItems != defaults.MaxItems {
		t.Errorf("MaxItems mismatch: config=%d settings=%d", cfg.MaxItems, defaults.MaxItems)
	}
	if cfg.DefaultBudget != 5000 {
		t.Errorf("expected default budget 5000, got %f", cfg.DefaultBudget)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.UnitsPerFoot = 60
	cfg.Padding = 5
	cfg.MaxItems = 12

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.UnitsPerFoot != 60 {
		t.Errorf("expected UnitsPerFoot=60, got %f", s.UnitsPerFoot)
	}
	if s.Padding != 5 {
		t.Errorf("expected Padding=5, got %f", s.Padding)
	}
	if s.MaxItems != 12 {
		t.Errorf("expected MaxItems=12, got %d", s.MaxItems)
	}
	if s.UnitsPerInch() != 5 {
		t.Errorf("expected UnitsPerInch=5, got %f", s.UnitsPerInch())
	}
}

func TestApplyToSettingsZeroValues(t *testing.T) {
	var cfg AppConfig

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	want := DefaultSettings()
	want.Padding = 0
	want.Margin = 0
	if s != want {
		t.Errorf("zero config should keep scale, step and limit but clear spacing, got %+v", s)
	}
}

func TestApplyToSettingsIgnoresNegativeSpacing(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Padding = -1
	cfg.Margin = -5

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.Padding != 10 || s.Margin != 10 {
		t.Errorf("negative spacing should be ignored, got padding %v margin %v", s.Padding, s.Margin)
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentProject("a.roomfit", 3)
	cfg.AddRecentProject("b.roomfit", 3)
	cfg.AddRecentProject("a.roomfit", 3)
	cfg.AddRecentProject("c.roomfit", 3)
	cfg.AddRecentProject("d.roomfit", 3)

	want := []string{"d.roomfit", "c.roomfit", "a.roomfit"}
	if len(cfg.RecentProjects) != len(want) {
		t.Fatalf("expected %d recent projects, got %v", len(want), cfg.RecentProjects)
	}
	for i := range want {
		if cfg.RecentProjects[i] != want[i] {
			t.Errorf("recent[%d] = %q, want %q", i, cfg.RecentProjects[i], want[i])
		}
	}
}
