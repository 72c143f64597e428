package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures orrery's tunable settings.
type Config struct {
	HorizonsURL     string // ephemeris API base; empty selects the public JPL endpoint
	RefreshSeconds  int    // sleep between refresh cycles
	BodyDelayMillis int    // courtesy pause between per-body requests
	Symbols         bool   // default marker set
}

const (
	defaultConfigPath      = "~/.config/orrery/config.toml"
	defaultRefreshSeconds  = 5
	defaultBodyDelayMillis = 120
)

// Load locates and parses the config file, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RefreshSeconds:  defaultRefreshSeconds,
		BodyDelayMillis: defaultBodyDelayMillis,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		HorizonsURL     string `toml:"horizons_url"`
		RefreshSeconds  int    `toml:"refresh_seconds"`
		BodyDelayMillis int    `toml:"body_delay_ms"`
		Symbols         bool   `toml:"symbols"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.HorizonsURL = strings.TrimSpace(raw.HorizonsURL)
	if raw.RefreshSeconds > 0 {
		cfg.RefreshSeconds = raw.RefreshSeconds
	}
	if raw.BodyDelayMillis > 0 {
		cfg.BodyDelayMillis = raw.BodyDelayMillis
	}
	cfg.Symbols = raw.Symbols

	return cfg, nil
}

// RefreshInterval returns the inter-cycle sleep as a duration.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshSeconds <= 0 {
		return defaultRefreshSeconds * time.Second
	}
	return time.Duration(c.RefreshSeconds) * time.Second
}

// BodyDelay returns the per-request courtesy pause as a duration.
func (c Config) BodyDelay() time.Duration {
	if c.BodyDelayMillis <= 0 {
		return defaultBodyDelayMillis * time.Millisecond
	}
	return time.Duration(c.BodyDelayMillis) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
