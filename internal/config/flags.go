package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagOutput       = flag.String("output", "", "Output directory for written sections")
	flagFrequency    = flag.String("frequency", "", "Section update frequency (average, frequent, infrequent)")
	flagCollision    = flag.Bool("collision", false, "Enable collision on built sections")
	flagTessellation = flag.Bool("tessellation", false, "Generate tessellation adjacency on build")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagOutput != "" {
		cfg.Tool.OutputDir = *flagOutput
	}
	if *flagFrequency != "" {
		cfg.Mesh.UpdateFrequency = *flagFrequency
	}
	if *flagCollision {
		cfg.Mesh.EnableCollision = true
	}
	if *flagTessellation {
		cfg.Mesh.EmitTessellation = true
	}
}
