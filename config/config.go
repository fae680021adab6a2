// Package config describes one batch run: where the sources are, which
// identifiers to process, and the layout tuning of the normalization.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xaionaro-go/revealframes/codec"
	"github.com/xaionaro-go/revealframes/frame"
	"github.com/xaionaro-go/revealframes/kernel"
	"gopkg.in/yaml.v3"
)

// Config represents a batch job configuration.
type Config struct {
	InputDir     string       `yaml:"input_dir"`
	OutputDir    string       `yaml:"output_dir"`
	Identifiers  []string     `yaml:"identifiers"`
	Sources      Sources      `yaml:"sources"`
	InputFormat  codec.Format `yaml:"input_format"`
	OutputFormat codec.Format `yaml:"output_format"`
	JPEGQuality  int          `yaml:"jpeg_quality"`

	Normalizer kernel.NormalizerConfig `yaml:"normalizer"`
	Frames     frame.ComposerConfig    `yaml:"frames"`
}

// Sources are the base names (without extension) of the two images inside
// every identifier folder.
type Sources struct {
	Esperanto string `yaml:"esperanto"`
	English   string `yaml:"english"`
}

// Default returns the configuration the tool historically ran with.
func Default() Config {
	return Config{
		InputDir:    "posts",
		OutputDir:   "temp",
		Identifiers: []string{"0500", "0501", "0502"},
		Sources: Sources{
			Esperanto: "esperanto",
			English:   "english",
		},
		InputFormat:  codec.FormatPNG,
		OutputFormat: codec.FormatPNG,
		JPEGQuality:  codec.DefaultJPEGQuality,
		Normalizer:   kernel.DefaultNormalizerConfig(),
		Frames:       frame.DefaultComposerConfig(),
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration is usable. The output directory is
// wiped at the start of a run, so it must not be or contain the input.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if isSubPath(c.OutputDir, c.InputDir) {
		return fmt.Errorf("output_dir '%s' must not contain input_dir '%s'", c.OutputDir, c.InputDir)
	}
	if len(c.Identifiers) == 0 {
		return fmt.Errorf("at least one identifier is required")
	}
	seen := map[string]struct{}{}
	for _, id := range c.Identifiers {
		if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
			return fmt.Errorf("invalid identifier '%s'", id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate identifier '%s'", id)
		}
		seen[id] = struct{}{}
	}
	if c.Sources.Esperanto == "" || c.Sources.English == "" {
		return fmt.Errorf("sources.esperanto and sources.english are required")
	}
	if c.Sources.Esperanto == c.Sources.English {
		return fmt.Errorf("sources.esperanto and sources.english must differ")
	}
	if c.InputFormat == codec.FormatUndefined {
		return fmt.Errorf("input_format is required")
	}
	if !c.OutputFormat.CanEncode() {
		return fmt.Errorf("output_format %s cannot be written", c.OutputFormat)
	}
	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be within [0, 100], got %d", c.JPEGQuality)
	}
	if c.Normalizer.UnsquareRatio <= 0 {
		return fmt.Errorf("normalizer.unsquare_ratio must be positive, got %g", c.Normalizer.UnsquareRatio)
	}
	if c.Normalizer.SecondHalfOffset < 0 {
		return fmt.Errorf("normalizer.second_half_offset must not be negative, got %d", c.Normalizer.SecondHalfOffset)
	}
	if c.Normalizer.PaddingFraction < 0 || c.Normalizer.PaddingFraction >= 0.5 {
		return fmt.Errorf("normalizer.padding_fraction must be within [0, 0.5), got %g", c.Normalizer.PaddingFraction)
	}
	if err := c.Frames.Validate(); err != nil {
		return fmt.Errorf("frames: %w", err)
	}
	return nil
}

// SourcePath returns the path of a source image of an identifier.
func (c *Config) SourcePath(identifier string, name string) string {
	return filepath.Join(c.InputDir, identifier, name+"."+c.InputFormat.Extension())
}

// FramePath returns the output path of a frame.
func (c *Config) FramePath(identifier string, index int) string {
	return filepath.Join(c.OutputDir, frame.Name(identifier, index, c.OutputFormat.Extension()))
}

func isSubPath(parent, child string) bool {
	parentAbs, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	childAbs, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(parentAbs, childAbs)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
