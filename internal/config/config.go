// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the access token goes to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"agentceo/cli/internal/manifest"
	"agentceo/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvAPIURL   = "AGENTCEO_API_URL"
	EnvLogLevel = "AGENTCEO_LOG_LEVEL"
	EnvTimeout  = "AGENTCEO_TIMEOUT"
	EnvEmail    = "AGENTCEO_EMAIL"
)

// Defaults applied when neither the environment nor the config file set a value.
const (
	DefaultAPIURL         = "http://localhost:8000"
	DefaultLogLevel       = "info"
	DefaultTimeoutSeconds = 30
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIURL         string                 `json:"api_url"`
	Email          string                 `json:"email,omitempty"`
	LogLevel       string                 `json:"log_level"`
	TimeoutSeconds int                    `json:"timeout_seconds"`
	Endpoints      manifest.HTTPEndpoints `json:"endpoints"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"api_url", "email", "log_level", "timeout_seconds"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		LogLevel:       DefaultLogLevel,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Endpoints:      manifest.DefaultEndpoints(),
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file yields defaults. A .env file in the
// working directory is loaded first without overriding the real environment,
// then AGENTCEO_* variables are applied on top of the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadFile reads only the config file, without .env or environment overrides.
// Use it when the result will be saved back.
func LoadFile() (Config, error) {
	c := Default()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	c.fillDefaults()
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Set assigns a single setting by key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_url":
		if value == "" {
			return errors.New("api_url cannot be empty")
		}
		c.APIURL = value
	case "email":
		c.Email = value
	case "log_level":
		if _, err := ParseLogLevel(value); err != nil {
			return err
		}
		c.LogLevel = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		c.TimeoutSeconds = n
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns a single setting by key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "email":
		return c.Email, nil
	case "log_level":
		return c.LogLevel, nil
	case "timeout_seconds":
		return strconv.Itoa(c.TimeoutSeconds), nil
	}
	return "", fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
}

// Timeout returns the HTTP client timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Manifest returns the endpoint configuration for the configured API.
func (c Config) Manifest() *manifest.Manifest {
	return &manifest.Manifest{APIURL: c.APIURL, HTTP: c.Endpoints}
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEmail)); v != "" {
		c.Email = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		if _, err := ParseLogLevel(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer (seconds), got %q", EnvTimeout, v)
		}
		c.TimeoutSeconds = n
	}
	return nil
}

func (c *Config) fillDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	c.Endpoints = c.Endpoints.WithDefaults()
}

// ParseLogLevel validates a log level name.
func ParseLogLevel(s string) (string, error) {
	switch l := strings.ToLower(strings.TrimSpace(s)); l {
	case "trace", "debug", "info", "warn", "error":
		return l, nil
	}
	return "", fmt.Errorf("invalid log level %q (use trace, debug, info, warn or error)", s)
}
