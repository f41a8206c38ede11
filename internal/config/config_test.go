package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesBuilderDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Build.Settings().Validate(); err != nil {
		t.Fatalf("default build settings invalid: %v", err)
	}
	if cfg.Output.Format != "bin" {
		t.Errorf("default format = %q, want bin", cfg.Output.Format)
	}
	if cfg.Build.Workers != 1 {
		t.Errorf("default workers = %d, want 1", cfg.Build.Workers)
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navforge.yaml")
	yaml := `
build:
  cell_size: 0.5
  agent_radius: 0.4
output:
  format: glb
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Build.CellSize != 0.5 {
		t.Errorf("cell size = %v, want 0.5", cfg.Build.CellSize)
	}
	if cfg.Build.AgentRadius != 0.4 {
		t.Errorf("agent radius = %v, want 0.4", cfg.Build.AgentRadius)
	}
	// Untouched keys keep their defaults.
	if cfg.Build.AgentHeight != Default().Build.AgentHeight {
		t.Errorf("agent height = %v, want default", cfg.Build.AgentHeight)
	}
	if cfg.Output.Format != "glb" {
		t.Errorf("format = %q, want glb", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSettingsConversion(t *testing.T) {
	b := BuildConfig{
		CellSize:      0.2,
		CellHeight:    0.1,
		AgentRadius:   0.5,
		AgentHeight:   1.8,
		AgentClimb:    0.4,
		MaxSlope:      50,
		MinRegionArea: 12,
	}
	s := b.Settings()
	if s.CellSize != 0.2 || s.CellHeight != 0.1 || s.AgentRadius != 0.5 ||
		s.AgentHeight != 1.8 || s.AgentClimb != 0.4 || s.MaxSlopeDeg != 50 ||
		s.MinRegionArea != 12 {
		t.Errorf("conversion mismatch: %+v", s)
	}
}
