package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/avdeev/daybook/core/config"
	coredatabase "github.com/avdeev/daybook/core/database"
	"github.com/avdeev/daybook/internal/digest"
)

// Config is the full application configuration: the reusable core sections
// plus the database and digest settings.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	Digest   digest.Config       `yaml:"digest"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// LoadConfig reads the YAML file, applies environment overrides, and
// validates every section.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := coredatabase.Normalize(&cfg.Database); err != nil {
		return nil, err
	}
	return &cfg, nil
}
