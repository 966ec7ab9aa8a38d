// Package config loads the filterpanel configuration file, applies environment
// overrides and persists UI preferences between runs.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/filterpanel/internal/logging"
	"github.com/rshade/filterpanel/internal/pagination"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables overriding the configuration file.
const (
	EnvHome           = "FILTERPANEL_HOME"
	EnvServerURL      = "FILTERPANEL_SERVER_URL"
	EnvServerUsername = "FILTERPANEL_USERNAME"
	EnvServerPassword = "FILTERPANEL_PASSWORD"
	EnvLogLevel       = "FILTERPANEL_LOG_LEVEL"
)

// Defaults.
const (
	DefaultServerURL = "http://127.0.0.1:3000"
	DefaultTimeout   = 10 * time.Second
	DefaultPageSize  = 10
	DefaultLocale    = "en"

	configFileName = "config.yaml"
	outputTypeFile = "file"
)

// ServerConfig points at the appliance control API.
type ServerConfig struct {
	URL      string        `yaml:"url"`
	Username string        `yaml:"username,omitempty"`
	Password string        `yaml:"password,omitempty"`
	Timeout  time.Duration `yaml:"timeout"`
}

// UIConfig holds table and display defaults.
type UIConfig struct {
	PageSize        int    `yaml:"page_size"`
	PageSizeOptions []int  `yaml:"page_size_options"`
	Locale          string `yaml:"locale"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Config is the full configuration file.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`

	path string
}

// New returns a configuration with defaults and environment overrides applied.
// Its file path is config.yaml under the configuration directory.
func New() *Config {
	cfg := &Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			PageSize:        DefaultPageSize,
			PageSizeOptions: pagination.DefaultPageSizeOptions(),
			Locale:          DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.path = filepath.Join(dir, configFileName)
	}
	cfg.applyEnv()
	return cfg
}

// Load reads the configuration file at path on top of the defaults. A missing
// file is not an error. An empty path means the default location.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		path = cfg.path
	}
	cfg.path = path
	if path == "" {
		return cfg, nil
	}

	if err := ShallowMergeYAML(cfg, path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the configuration is read from and saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its file.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("%w: no config file path", ErrInvalidConfig)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(c.path), 0o700); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}
	return writeFileAtomic(c.path, data)
}

// Validate checks the server URL and page sizes.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server.url %q must be an http(s) URL", ErrInvalidConfig, c.Server.URL)
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("%w: server.timeout must not be negative", ErrInvalidConfig)
	}
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("%w: ui.page_size must be positive, got %d", ErrInvalidConfig, c.UI.PageSize)
	}
	for _, size := range c.UI.PageSizeOptions {
		if size <= 0 {
			return fmt.Errorf("%w: ui.page_size_options must be positive, got %d", ErrInvalidConfig, size)
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvServerURL); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv(EnvServerUsername); v != "" {
		c.Server.Username = v
	}
	if v := os.Getenv(EnvServerPassword); v != "" {
		c.Server.Password = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// ToLoggingConfig converts the logging section for the logging package. A
// configured file switches the output to that file.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
