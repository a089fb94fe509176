package core

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/quadbatch/engine/colors"
)

// Config for the engine run.
type Config struct {
	Title      string         `yaml:"title"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	VSync      bool           `yaml:"vsync"`
	ClearColor colors.Color   `yaml:"clear_color"`
	AssetRoot  string         `yaml:"asset_root"`
	Renderer   RendererConfig `yaml:"renderer"`
}

// RendererConfig sizes the 2D batch renderer. The zero value selects the
// defaults.
type RendererConfig struct {
	// MaxQuads bounds the geometry of a single draw call.
	MaxQuads int `yaml:"max_quads"`
	// DisableCulling submits every quad, on screen or not.
	DisableCulling bool `yaml:"disable_culling"`
}

const DefaultMaxQuads = 20000

// maxQuadsLimit keeps the highest vertex index representable in uint32.
const maxQuadsLimit = (1<<32 - 1) / 4

func DefaultConfig() Config {
	return Config{
		Title:      "quadbatch",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		AssetRoot:  "assets",
		Renderer:   RendererConfig{MaxQuads: DefaultMaxQuads},
	}
}

// WithDefaults fills unset fields.
func (c RendererConfig) WithDefaults() RendererConfig {
	if c.MaxQuads <= 0 {
		c.MaxQuads = DefaultMaxQuads
	}
	return c
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Renderer.MaxQuads < 0 || c.Renderer.MaxQuads > maxQuadsLimit {
		return errors.Errorf("config: renderer.max_quads %d out of range", c.Renderer.MaxQuads)
	}
	return nil
}

// LoadConfig reads a YAML config file on top of DefaultConfig. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			Logger().Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}
