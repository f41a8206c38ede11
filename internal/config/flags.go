package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagCellSize    = flag.Float64("cell-size", 0, "Voxel size on the xz plane")
	flagCellHeight  = flag.Float64("cell-height", 0, "Voxel size along the y axis")
	flagAgentRadius = flag.Float64("agent-radius", 0, "Agent radius in world units")
	flagAgentHeight = flag.Float64("agent-height", 0, "Agent height in world units")
	flagAgentClimb  = flag.Float64("agent-climb", 0, "Maximum traversable ledge height")
	flagMaxSlope    = flag.Float64("max-slope", 0, "Maximum walkable slope in degrees")
	flagWorkers     = flag.Int("workers", 0, "Goroutines used for geometry flattening")
	flagFormat      = flag.String("format", "", "Output format: bin, glb or gltf")
	flagOut         = flag.String("out", "", "Output file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags(args []string) {
	flag.CommandLine.Parse(args)
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCellSize > 0 {
		cfg.Build.CellSize = float32(*flagCellSize)
	}
	if *flagCellHeight > 0 {
		cfg.Build.CellHeight = float32(*flagCellHeight)
	}
	if *flagAgentRadius > 0 {
		cfg.Build.AgentRadius = float32(*flagAgentRadius)
	}
	if *flagAgentHeight > 0 {
		cfg.Build.AgentHeight = float32(*flagAgentHeight)
	}
	if *flagAgentClimb > 0 {
		cfg.Build.AgentClimb = float32(*flagAgentClimb)
	}
	if *flagMaxSlope > 0 {
		cfg.Build.MaxSlope = float32(*flagMaxSlope)
	}
	if *flagWorkers > 0 {
		cfg.Build.Workers = *flagWorkers
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
}
