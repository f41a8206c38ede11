// Package config handles tool configuration loading and management.
package config

import "github.com/Faultbox/navforge/pkg/navmesh"

// Config holds all navforge settings.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds navmesh build settings.
type BuildConfig struct {
	CellSize      float32 `yaml:"cell_size"`
	CellHeight    float32 `yaml:"cell_height"`
	AgentRadius   float32 `yaml:"agent_radius"`
	AgentHeight   float32 `yaml:"agent_height"`
	AgentClimb    float32 `yaml:"agent_climb"`
	MaxSlope      float32 `yaml:"max_slope"`
	MinRegionArea int     `yaml:"min_region_area"`

	// Workers controls how many goroutines the geometry flatten step may
	// use. Zero or one means sequential.
	Workers int `yaml:"workers"`
}

// OutputConfig holds output sink settings.
type OutputConfig struct {
	// Format selects the sink: "bin" for the NAVM binary encoding,
	// "glb" or "gltf" for a single-node scene document.
	Format string `yaml:"format"`
	// Path overrides the derived output file name.
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	s := navmesh.DefaultSettings()
	return &Config{
		Build: BuildConfig{
			CellSize:      s.CellSize,
			CellHeight:    s.CellHeight,
			AgentRadius:   s.AgentRadius,
			AgentHeight:   s.AgentHeight,
			AgentClimb:    s.AgentClimb,
			MaxSlope:      s.MaxSlopeDeg,
			MinRegionArea: s.MinRegionArea,
			Workers:       1,
		},
		Output: OutputConfig{
			Format: "bin",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the build section into navmesh build settings.
func (c *BuildConfig) Settings() navmesh.Settings {
	return navmesh.Settings{
		CellSize:      c.CellSize,
		CellHeight:    c.CellHeight,
		AgentRadius:   c.AgentRadius,
		AgentHeight:   c.AgentHeight,
		AgentClimb:    c.AgentClimb,
		MaxSlopeDeg:   c.MaxSlope,
		MinRegionArea: c.MinRegionArea,
	}
}
