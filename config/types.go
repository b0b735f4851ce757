package config

// StorageConfig selects where finished maps are kept.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file sqlite"`
	Dir     string `yaml:"dir" validate:"required_if=Backend file"`
	DSN     string `yaml:"dsn" validate:"required_if=Backend sqlite"`
}

// ViewportConfig is the overlay's target rectangle in pixels.
type ViewportConfig struct {
	Width  float32 `yaml:"width" validate:"gt=0"`
	Height float32 `yaml:"height" validate:"gt=0"`
}

// AppConfig is the root of trackmap.yml.
type AppConfig struct {
	Storage  StorageConfig             `yaml:"storage"`
	Viewport ViewportConfig            `yaml:"viewport"`
	Overlays map[string]map[string]any `yaml:"overlays"`
}
