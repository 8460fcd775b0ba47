package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/swapi"
	"github.com/ikari-pl/go-swapi-browser/internal/tui/theme"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, swapi.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 9, cfg.PageSize)
	assert.Equal(t, catalog.DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, catalog.IdentityLocator, cfg.IdentityMode())
	assert.Equal(t, theme.ModeLight, cfg.ThemeMode())
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"http base url", func(c *Config) { c.BaseURL = "http://localhost:8080/api/people" }, false},
		{"relative base url", func(c *Config) { c.BaseURL = "/api/people/" }, true},
		{"ftp base url", func(c *Config) { c.BaseURL = "ftp://swapi.dev/api/people/" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"position identity", func(c *Config) { c.Identity = "position" }, false},
		{"invalid identity", func(c *Config) { c.Identity = "name" }, true},
		{"dark theme", func(c *Config) { c.Theme = "dark" }, false},
		{"invalid theme", func(c *Config) { c.Theme = "solarized" }, true},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, false},
		{"invalid level", func(c *Config) { c.LogLevel = "chatty" }, true},
		{"yaml format", func(c *Config) { c.OutputFormat = "yaml" }, false},
		{"invalid format", func(c *Config) { c.OutputFormat = "csv" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.setup(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNormalisesBaseURL(t *testing.T) {
	cfg := NewConfig()
	cfg.BaseURL = "https://swapi.example/api/people"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://swapi.example/api/people/", cfg.BaseURL)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
base_url: https://mirror.example/api/people/
timeout: 3s
page_size: 5
theme: dark
`)
	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "https://mirror.example/api/people/", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "locator", cfg.Identity, "unset keys keep defaults")
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	err = cfg.LoadFile(writeFile(t, "page_size: [not, a, number]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SWAPI_BROWSER_PAGE_SIZE", "12")
	t.Setenv("SWAPI_BROWSER_IDENTITY", "position")
	t.Setenv("SWAPI_BROWSER_TIMEOUT", "250ms")

	cfg := NewConfig()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "position", cfg.Identity)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, swapi.DefaultBaseURL, cfg.BaseURL)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("SWAPI_BROWSER_CONCURRENCY", "many")
	cfg := NewConfig()
	assert.Error(t, cfg.ApplyEnv())
}

func TestLoadLayering(t *testing.T) {
	path := writeFile(t, `
page_size: 5
theme: dark
concurrency: 2
`)
	t.Setenv("SWAPI_BROWSER_PAGE_SIZE", "7")
	t.Setenv("SWAPI_BROWSER_CONCURRENCY", "3")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--concurrency", "4", "--base-url", "http://localhost:9000/people"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme, "file overrides default")
	assert.Equal(t, 7, cfg.PageSize, "env overrides file")
	assert.Equal(t, 4, cfg.Concurrency, "flag overrides env")
	assert.Equal(t, "http://localhost:9000/people/", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel, "unset flags do not clobber")
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("SWAPI_BROWSER_THEME", "neon")
	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
}

func TestApplyFlagsFormat(t *testing.T) {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.String(FlagFormat, "table", "")
	require.NoError(t, fs.Parse([]string{"--format=json"}))

	cfg := NewConfig()
	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestConversions(t *testing.T) {
	cfg := NewConfig()
	cfg.BaseURL = "http://localhost/api/people/"
	cfg.Timeout = time.Second

	opts := cfg.ClientOptions()
	assert.Equal(t, "http://localhost/api/people/", opts.BaseURL)
	assert.Equal(t, time.Second, opts.Timeout)
	assert.NotEmpty(t, opts.UserAgent)
	assert.Len(t, cfg.AggregatorOptions(), 1)
}

func TestNewLogger(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "browser.log")
	cfg.LogLevel = "debug"

	logger, closer, err := cfg.NewLogger(nil)
	require.NoError(t, err)
	logger.Debug("Loaded collection", "entities", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loaded collection")
	assert.Contains(t, string(data), "entities=3")
}

func TestNewLoggerDiscards(t *testing.T) {
	cfg := NewConfig()
	logger, closer, err := cfg.NewLogger(nil)
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closer.Close())
}
