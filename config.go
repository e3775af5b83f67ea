package browserx

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the browse CLI's configuration.
type Config struct {
	UserAgent             string `yaml:"user_agent"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
	MaxRedirects          int    `yaml:"max_redirects"`
	Verbose               bool   `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		ConnectTimeoutSeconds: 10,
		MaxRedirects:          5,
	}
}

func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// LoadConfig reads a yaml config from path, defaulting to
// ~/.config/browse/config.yaml. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "browse", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "reading config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}

	return cfg, nil
}
