// Package config reads server settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the server settings.
type Config struct {
	Host    string `env:"HOST"`
	Port    int    `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// ContentFile overlays the built-in page content when set.
	ContentFile string `env:"CONTENT_FILE"`
	ImagesDir   string `env:"IMAGES_DIR" envDefault:"./images"`
	WasmDir     string `env:"WASM_DIR" envDefault:"./dist/wasm"`

	// Window size assumed for the first render, before the browser reports
	// its own.
	DefaultWindowWidth  float64 `env:"DEFAULT_WINDOW_WIDTH" envDefault:"1280"`
	DefaultWindowHeight float64 `env:"DEFAULT_WINDOW_HEIGHT" envDefault:"800"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the server configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validFormats = map[string]bool{"console": true, "json": true}

// Validate checks ranges the env parser cannot express.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format %q: must be console or json", c.LogFormat)
	}
	if c.DefaultWindowWidth < 0 || c.DefaultWindowHeight < 0 {
		return fmt.Errorf("default window size must be non-negative")
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
