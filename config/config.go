package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds startup settings read from the environment.
type Config struct {
	// MinColumnWidth is the floor for the grid column width, in cells.
	MinColumnWidth int    `env:"SHELF_MIN_COLUMN_WIDTH" envDefault:"24"`
	LogLevel       string `env:"SHELF_LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"SHELF_LOG_FILE"`
	Seed           bool   `env:"SHELF_SEED" envDefault:"true"`
	InitScript     string `env:"SHELF_INIT"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment if environ is nil.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}

	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if cfg.MinColumnWidth < 0 {
		return nil, errors.Errorf("SHELF_MIN_COLUMN_WIDTH must be >= 0, got %d", cfg.MinColumnWidth)
	}
	if cfg.InitScript == "" {
		cfg.InitScript = InitFile()
	}

	return cfg, nil
}

// Dir returns the shelf configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "shelf")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}
