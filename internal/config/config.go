// Package config handles towergen configuration loading and management.
package config

import "github.com/Faultbox/towergen/pkg/building"

// Config holds all generator settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds the building used when positional arguments are absent.
type MeshConfig struct {
	Sides        int     `yaml:"sides"`
	Height       float64 `yaml:"height"`
	RadiusBottom float64 `yaml:"radius_bottom"`
	RadiusTop    float64 `yaml:"radius_top"`
}

// Level returns the default ground level.
func (m MeshConfig) Level() building.LevelSpec {
	return building.LevelSpec{Height: m.Height, RadiusBottom: m.RadiusBottom, RadiusTop: m.RadiusTop}
}

// OutputConfig holds OBJ output settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"`          // Directory for derived file names
	OutwardCaps bool   `yaml:"outward_caps"` // Wind cap triangles to face outward
}

// Winding returns the cap winding selected by the output settings.
func (o OutputConfig) Winding() building.Winding {
	if o.OutwardCaps {
		return building.WindingOutward
	}
	return building.WindingCompat
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the generator's built-in values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Sides:        8,
			Height:       6.0,
			RadiusBottom: 1.0,
			RadiusTop:    0.8,
		},
		Output: OutputConfig{
			Dir:         ".",
			OutwardCaps: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
