package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// ViewerConfig holds the terminal client configuration.
type ViewerConfig struct {
	APIURL       string        `env:"VIEWER_API_URL" envDefault:"http://localhost:5000"`
	Timezone     string        `env:"VIEWER_TIMEZONE" envDefault:"Local"`
	FetchTimeout time.Duration `env:"VIEWER_FETCH_TIMEOUT" envDefault:"10s"`
	GlobalSort   bool          `env:"VIEWER_GLOBAL_SORT" envDefault:"false"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"warn"`
}

// Location resolves Timezone to a *time.Location.
func (c *ViewerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid VIEWER_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadViewer parses environment variables and returns a ViewerConfig.
func LoadViewer() (*ViewerConfig, error) {
	cfg := &ViewerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse viewer config: %w", err)
	}
	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")
	return cfg, nil
}
