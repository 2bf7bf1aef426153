package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config describes a single corner to smooth and how to print the result.
type Config struct {
	Start  [2]float64 `yaml:"start" toml:"start"`
	Corner [2]float64 `yaml:"corner" toml:"corner"`
	End    [2]float64 `yaml:"end" toml:"end"`

	Sharpness    float64 `yaml:"sharpness" toml:"sharpness"`
	MaxCurvature float64 `yaml:"max_curvature" toml:"max_curvature"`
	Spacing      float64 `yaml:"spacing" toml:"spacing"`

	Format string `yaml:"format" toml:"format"`
}

func defaultConfig() Config {
	return Config{
		Start:        [2]float64{0, 4},
		Corner:       [2]float64{0, 1},
		End:          [2]float64{-2, 2},
		Sharpness:    2.75,
		MaxCurvature: 2,
		Spacing:      0.1,
		Format:       formatLatex,
	}
}

// loadConfig reads the file at path on top of the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := decodeConfig(data, filepath.Ext(path), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig decodes data into cfg, choosing the syntax by file
// extension. Fields missing from data keep their current values.
func decodeConfig(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case ".yaml", ".yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

func (cfg Config) validate() error {
	var errs []error
	for _, p := range []struct {
		name string
		xy   [2]float64
	}{
		{"start", cfg.Start},
		{"corner", cfg.Corner},
		{"end", cfg.End},
	} {
		if !finite(p.xy[0]) || !finite(p.xy[1]) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", p.name, p.xy))
		}
	}
	if !(cfg.Sharpness > 0) || !finite(cfg.Sharpness) {
		errs = append(errs, fmt.Errorf("sharpness must be positive, got %v", cfg.Sharpness))
	}
	if !(cfg.MaxCurvature > 0) || !finite(cfg.MaxCurvature) {
		errs = append(errs, fmt.Errorf("max_curvature must be positive, got %v", cfg.MaxCurvature))
	}
	if !(cfg.Spacing > 0) || !finite(cfg.Spacing) {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %v", cfg.Spacing))
	}
	if _, ok := writers[cfg.Format]; !ok {
		errs = append(errs, fmt.Errorf("unknown format %q", cfg.Format))
	}
	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
