// Package config
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	CheckName string       `yaml:"check_name" validate:"required"`
	Target    TargetConfig `yaml:"target"`
	Snmp      SnmpConfig   `yaml:"snmp"`
	Ping      PingConfig   `yaml:"ping"`
	Verbose   bool         `yaml:"verbose"`
}

type TargetConfig struct {
	Host      string `yaml:"host"`
	Community string `yaml:"community" validate:"required"`
}

type SnmpConfig struct {
	Port      uint16 `yaml:"port" validate:"required"`
	TimeoutMS int    `yaml:"timeout_ms" validate:"gt=0"`
	Retries   int    `yaml:"retries" validate:"gte=0"`
}

type PingConfig struct {
	TimeoutMS int `yaml:"timeout_ms" validate:"gt=0"`
}

// DefaultConfig returns the built-in probe defaults. A config file,
// environment variables and command-line flags override them, in that order.
func DefaultConfig() *Config {
	return &Config{
		CheckName: "Netapp health",
		Target: TargetConfig{
			Community: "public",
		},
		Snmp: SnmpConfig{
			Port:      161,
			TimeoutMS: 5000,
			Retries:   2,
		},
		Ping: PingConfig{
			TimeoutMS: 1000,
		},
	}
}

// Load reads configuration from an optional file and applies environment
// variable overrides
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Validate ensures all required configuration values are set. The target
// host is checked first because it is the one value with no usable default.
func (c *Config) Validate() error {
	if c.Target.Host == "" {
		return fmt.Errorf("target host is required")
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// applyEnvOverrides checks for environment variables with CHECK_NETAPP_ prefix
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CHECK_NETAPP_HOST"); v != "" {
		cfg.Target.Host = v
	}
	if v := os.Getenv("CHECK_NETAPP_COMMUNITY"); v != "" {
		cfg.Target.Community = v
	}
	if v := os.Getenv("CHECK_NETAPP_SNMP_PORT"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Snmp.Port)
	}
	if v := os.Getenv("CHECK_NETAPP_SNMP_TIMEOUT_MS"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Snmp.TimeoutMS)
	}
	if v := os.Getenv("CHECK_NETAPP_SNMP_RETRIES"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Snmp.Retries)
	}
	if v := os.Getenv("CHECK_NETAPP_PING_TIMEOUT_MS"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Ping.TimeoutMS)
	}
}

// GetTimeout returns the per-query SNMP timeout as a duration
func (s *SnmpConfig) GetTimeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// GetTimeout returns the liveness probe timeout as a duration
func (p *PingConfig) GetTimeout() time.Duration {
	return time.Duration(p.TimeoutMS) * time.Millisecond
}
