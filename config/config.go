package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"agroweather/manager"
)

//go:embed config.yaml
var configRaw []byte

type Config struct {
	Server    Server             `yaml:"server"`
	OpenMeteo OpenMeteo          `yaml:"api.open-meteo.com"`
	Defaults  manager.Coordinate `yaml:"defaults"`
	Language  string             `yaml:"language"`
	CORS      CORS               `yaml:"cors"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type OpenMeteo struct {
	BaseURL string `yaml:"baseURL"`
}

type CORS struct {
	AllowOrigin  string `yaml:"allowOrigin"`
	AllowHeaders string `yaml:"allowHeaders"`
}

// Load decodes the embedded defaults, then the file at path (or $CONFIG_PATH) on top of them.
// A PORT set by the hosting platform overrides the listen address.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := yaml.Unmarshal(configRaw, cfg); err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Server.Addr = ":" + port
	}

	return cfg, nil
}

func (c *Config) Lang() manager.Language {
	return manager.ParseLanguage(c.Language)
}
