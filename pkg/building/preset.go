package building

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Preset is a building description stored in a file.
type Preset struct {
	Sides  int         `yaml:"sides" toml:"sides"`
	Levels []LevelSpec `yaml:"levels" toml:"levels"`
}

// Validate checks the preset like a positional description.
func (p *Preset) Validate() error {
	return Validate(p.Sides, p.Levels)
}

// LoadPreset reads a preset file. The format is chosen by extension:
// .yaml, .yml or .toml.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := ParsePreset(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// ParsePreset decodes and validates a preset. format is a file
// extension, with or without the leading dot.
func ParsePreset(data []byte, format string) (*Preset, error) {
	var p Preset

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPreset, format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
