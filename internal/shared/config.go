package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	SongLink SongLinkConfig `toml:"songlink"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// SongLinkConfig contains settings for the song.link resolution API.
type SongLinkConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserCountry    string `toml:"user_country"`
}

// UIConfig contains selection UI settings.
type UIConfig struct {
	Interactive bool `toml:"interactive"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Timeout returns the request timeout as a [time.Duration].
func (c SongLinkConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their [DefaultConfig] values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports values that would make the resolver or logger unusable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SongLink.BaseURL) == "" {
		return fmt.Errorf("%w: songlink.base_url is empty", ErrInvalidConfig)
	}
	if c.SongLink.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: songlink.timeout_seconds must be positive, got %d", ErrInvalidConfig, c.SongLink.TimeoutSeconds)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/listen/config.toml (or the OS equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "listen", "config.toml"), nil
}

// ResolveConfig loads the configuration for a run.
//
// An explicit path must exist. Without one, the default path is tried and a missing file falls back to [DefaultConfig].
func ResolveConfig(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(defaultPath); err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(defaultPath)
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
