// Package config handles tool configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/runtimemesh/pkg/mesh"
)

// Config holds all meshtool settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Tool    ToolConfig    `yaml:"tool"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds defaults applied to sections the tool builds.
type MeshConfig struct {
	UpdateFrequency  string `yaml:"update_frequency"` // average, frequent, infrequent
	RecomputeNormals bool   `yaml:"recompute_normals"`
	EmitTessellation bool   `yaml:"emit_tessellation"`
	EnableCollision  bool   `yaml:"enable_collision"`
}

// ToolConfig holds tool behavior settings.
type ToolConfig struct {
	OutputDir       string `yaml:"output_dir"`
	WatchDebounceMS int    `yaml:"watch_debounce_ms"`
}

// Debounce returns the watch debounce interval.
func (t ToolConfig) Debounce() time.Duration {
	return time.Duration(t.WatchDebounceMS) * time.Millisecond
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			UpdateFrequency:  "average",
			RecomputeNormals: true,
			EmitTessellation: false,
			EnableCollision:  false,
		},
		Tool: ToolConfig{
			OutputDir:       ".",
			WatchDebounceMS: 200,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Frequency converts the configured update frequency name to its mesh
// value. Unknown names map to average.
func (m MeshConfig) Frequency() mesh.UpdateFrequency {
	switch m.UpdateFrequency {
	case "frequent":
		return mesh.UpdateFrequencyFrequent
	case "infrequent":
		return mesh.UpdateFrequencyInfrequent
	default:
		return mesh.UpdateFrequencyAverage
	}
}

// Apply stamps the configured defaults onto a section.
func (m MeshConfig) Apply(s mesh.Section) {
	base := s.Base()
	base.CollisionEnabled = m.EnableCollision
	base.UpdateFrequency = m.Frequency()
	if m.RecomputeNormals {
		s.GenerateNormalTangent()
	}
	if m.EmitTessellation {
		s.GenerateTessellationIndices()
		base.UseAdjacencyIndices = true
	}
}
