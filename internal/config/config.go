// Package config provides configuration management for the swapi browser.
//
// Values are layered: defaults, then an optional YAML file, then SWAPI_BROWSER_*
// environment variables, then command-line flags that were explicitly set.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/swapi"
	"github.com/ikari-pl/go-swapi-browser/internal/tui/theme"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

// EnvPrefix prefixes every environment variable the browser reads.
const EnvPrefix = "SWAPI_BROWSER_"

// Flag names shared by the CLI commands.
const (
	FlagConfig      = "config"
	FlagBaseURL     = "base-url"
	FlagTimeout     = "timeout"
	FlagConcurrency = "concurrency"
	FlagPageSize    = "page-size"
	FlagIdentity    = "identity"
	FlagTheme       = "theme"
	FlagLogLevel    = "log-level"
	FlagLogFile     = "log-file"
	FlagFormat      = "format"
)

// Config holds the application configuration.
type Config struct {
	// Remote API
	BaseURL     string        `yaml:"base_url" env:"BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT"`
	Concurrency int           `yaml:"concurrency" env:"CONCURRENCY"`

	// Views
	PageSize int    `yaml:"page_size" env:"PAGE_SIZE"`
	Identity string `yaml:"identity" env:"IDENTITY"` // "locator", "position"
	Theme    string `yaml:"theme" env:"THEME"`       // "light", "dark"

	// Logging
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"LOG_FILE"`

	// Non-interactive output
	OutputFormat string `yaml:"format" env:"FORMAT"` // "table", "json", "yaml", "markdown"
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:      swapi.DefaultBaseURL,
		Timeout:      swapi.DefaultOptions().Timeout,
		Concurrency:  catalog.DefaultConcurrency,
		PageSize:     viewstate.DefaultPageSize,
		Identity:     string(catalog.IdentityLocator),
		Theme:        string(theme.ModeLight),
		LogLevel:     "info",
		OutputFormat: "table",
	}
}

// Load builds the layered configuration. path may be empty; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if fs != nil {
		if err := cfg.ApplyFlags(fs); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays SWAPI_BROWSER_* environment variables onto c. Unset
// variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RegisterFlags adds the configuration flags to fs, with defaults for help output.
func RegisterFlags(fs *pflag.FlagSet) {
	d := NewConfig()
	fs.String(FlagConfig, "", "Path to a YAML config file")
	fs.String(FlagBaseURL, d.BaseURL, "Collection endpoint of the remote API")
	fs.Duration(FlagTimeout, d.Timeout, "HTTP request timeout")
	fs.Int(FlagConcurrency, d.Concurrency, "Maximum concurrent related-resource requests")
	fs.Int(FlagPageSize, d.PageSize, "Rows per page")
	fs.String(FlagIdentity, d.Identity, "Detail routing identity (locator, position)")
	fs.String(FlagTheme, d.Theme, "Color theme (light, dark)")
	fs.String(FlagLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, d.LogFile, "Write logs to this file")
}

// ApplyFlags overlays the flags of fs that were set on the command line.
// Flags that were not registered on fs are skipped.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var errs []error
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}
	str := func(name string, dst *string) {
		if changed(name) {
			v, err := fs.GetString(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if changed(name) {
			v, err := fs.GetInt(name)
			errs = append(errs, err)
			*dst = v
		}
	}

	str(FlagBaseURL, &c.BaseURL)
	if changed(FlagTimeout) {
		v, err := fs.GetDuration(FlagTimeout)
		errs = append(errs, err)
		c.Timeout = v
	}
	num(FlagConcurrency, &c.Concurrency)
	num(FlagPageSize, &c.PageSize)
	str(FlagIdentity, &c.Identity)
	str(FlagTheme, &c.Theme)
	str(FlagLogLevel, &c.LogLevel)
	str(FlagLogFile, &c.LogFile)
	str(FlagFormat, &c.OutputFormat)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("reading flags: %w", err)
	}
	return nil
}

// Validate validates the configuration and normalises the base URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base url: %q", c.BaseURL)
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", c.PageSize)
	}

	switch catalog.IdentityMode(c.Identity) {
	case catalog.IdentityLocator, catalog.IdentityPosition:
	default:
		return fmt.Errorf("invalid identity: %s (valid: locator, position)", c.Identity)
	}

	switch theme.Mode(c.Theme) {
	case theme.ModeLight, theme.ModeDark:
	default:
		return fmt.Errorf("invalid theme: %s (valid: light, dark)", c.Theme)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	validFormats := map[string]bool{
		"table":    true,
		"json":     true,
		"yaml":     true,
		"markdown": true,
	}
	if !validFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format: %s (valid: table, json, yaml, markdown)", c.OutputFormat)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return level, nil
}

// IdentityMode returns the configured identity as a catalog mode.
func (c *Config) IdentityMode() catalog.IdentityMode {
	return catalog.IdentityMode(c.Identity)
}

// ThemeMode returns the configured theme mode.
func (c *Config) ThemeMode() theme.Mode {
	return theme.Mode(c.Theme)
}

// ClientOptions converts the config to remote client options.
func (c *Config) ClientOptions() swapi.Options {
	opts := swapi.DefaultOptions()
	opts.BaseURL = c.BaseURL
	opts.Timeout = c.Timeout
	return opts
}

// AggregatorOptions converts the config to aggregator options.
func (c *Config) AggregatorOptions() []catalog.AggregatorOption {
	return []catalog.AggregatorOption{catalog.WithConcurrency(c.Concurrency)}
}

// NewLogger builds the application logger. Logs go to LogFile when set and to
// fallback otherwise; a nil fallback discards them. The returned closer must be
// closed on exit.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	case fallback != nil:
		w = fallback
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}
