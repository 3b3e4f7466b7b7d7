package toggles

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/nodetrace/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultLogDir is the directory, relative to the anchor, that receives trace files.
const DefaultLogDir = "logs"

// FileConfig is the structure of a nodetrace.yaml file.
//
//	enabled: true
//	categories:
//	  node_start: true
//	  tool_call: false
//	log_dir: logs
type FileConfig struct {
	Enabled    *bool           `yaml:"enabled"`
	Categories map[string]bool `yaml:"categories"`
	LogDir     string          `yaml:"log_dir"`
}

// Toggles resolves the file against DefaultToggles. Omitted keys keep their default.
func (fc FileConfig) Toggles() (domain.ToggleSet, error) {
	ts := domain.DefaultToggles()
	if fc.Enabled != nil {
		ts.Enabled = *fc.Enabled
	}
	for name, on := range fc.Categories {
		c, err := domain.ParseCategory(name)
		if err != nil {
			return ts, err
		}
		ts = ts.With(c, on)
	}
	return ts, nil
}

// LoadFile reads a YAML config file.
// A missing file yields an empty FileConfig, which resolves to the defaults.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to read toggle config: %w", err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse toggle config %s: %w", path, err)
	}
	return fc, nil
}

// FileSource is a Source backed by a YAML file, re-read on every Load.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(ctx context.Context) (domain.ToggleSet, error) {
	fc, err := LoadFile(s.Path)
	if err != nil {
		return domain.ToggleSet{}, err
	}
	return fc.Toggles()
}
