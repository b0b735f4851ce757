// Package config loads trackmap.yml and serves per-overlay named values.
//
// Settings are validated with struct tags. Overlay values (line width,
// colours, toggles) are free-form and looked up by name with a default, so a
// missing or mistyped key never stops an overlay from drawing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid config")

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	return &AppConfig{
		Storage:  StorageConfig{Backend: "file", Dir: "maps", DSN: "maps.db"},
		Viewport: ViewportConfig{Width: 200, Height: 200},
		Overlays: map[string]map[string]any{},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on the settings sections.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Storage); err != nil {
		return fmt.Errorf("%w: storage: %v", ErrInvalid, err)
	}
	if err := v.Struct(c.Viewport); err != nil {
		return fmt.Errorf("%w: viewport: %v", ErrInvalid, err)
	}
	return nil
}

// Section returns the named values for one overlay. Unknown overlays get an
// empty section, so every lookup yields its default.
func (c *AppConfig) Section(name string) Values {
	return Values{name: name, values: c.Overlays[name]}
}
