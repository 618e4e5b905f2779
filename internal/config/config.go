// Package config loads server configuration once at startup. The result is
// passed into the router wiring explicitly; nothing here is a global.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	CMS    cms.Config   `yaml:"cms"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads configuration from an optional YAML file and environment
// variables. Env vars override file values.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8081,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("REALTOR_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("REALTOR_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("REALTOR_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REALTOR_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("REALTOR_CMS_PROJECT_ID"); v != "" {
		cfg.CMS.ProjectID = v
	}
	if v := os.Getenv("REALTOR_CMS_DATASET"); v != "" {
		cfg.CMS.Dataset = v
	}
	if v := os.Getenv("REALTOR_CMS_TOKEN"); v != "" {
		cfg.CMS.Token = v
	}
	if v := os.Getenv("REALTOR_CMS_BASE_URL"); v != "" {
		cfg.CMS.BaseURL = v
	}
	if level := os.Getenv("REALTOR_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
