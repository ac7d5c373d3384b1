package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`
}

// Load builds the configuration and returns it to the caller; nothing is
// kept in package state. When DATABASE_URL is set the whole config comes
// from the environment (test/CI mode), otherwise it is read from the yaml
// file at CONFIG_PATH (default config/config.yaml).
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60

		if ttl := os.Getenv("JWT_TTL_MINUTES"); ttl != "" {
			if v, err := strconv.Atoi(ttl); err == nil {
				cfg.JWT.TTL = v
			}
		}

		return applyDefaults(&cfg)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	return applyDefaults(&cfg)
}

func applyDefaults(cfg *Config) (*Config, error) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60 * 24 // one day
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database url is not configured")
	}
	return cfg, nil
}
