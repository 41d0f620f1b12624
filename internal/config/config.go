package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for tmt, stored in ~/.tmt/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Timezone is the IANA timezone that decides which day a mood belongs to
	// (e.g. "Europe/Berlin"). Empty = the system's local zone.
	Timezone string `json:"timezone"`
	// LogLevel is "info" or "debug".
	LogLevel string       `json:"log_level"`
	Serve    ServeConfig  `json:"serve"`
	Digest   DigestConfig `json:"digest"`
}

// ServeConfig holds settings for the HTTP API started by `tmt serve`.
type ServeConfig struct {
	Addr string `json:"addr"`
}

// DigestConfig controls the end-of-day summary written by `tmt serve`.
type DigestConfig struct {
	// Schedule is a five-field cron expression. Empty disables the digest.
	Schedule string `json:"schedule"`
}

const (
	// DefaultAddr keeps the API on the loopback interface.
	DefaultAddr = "127.0.0.1:8787"
	// DefaultSchedule runs the digest right after midnight.
	DefaultSchedule = "0 0 * * *"
	// DefaultLogLevel is the zap level used when none is configured.
	DefaultLogLevel = "info"
)

// Default returns a Config pre-filled with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Serve:    ServeConfig{Addr: DefaultAddr},
		Digest:   DigestConfig{Schedule: DefaultSchedule},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tmt configuration – ~/.tmt/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Moods are kept in memory only and are gone when tmt exits.
{
  // IANA timezone deciding which calendar day a mood is filed under,
  // e.g. "Europe/Berlin". Leave empty to use the system's local zone.
  // Can be overridden with the TMT_TIMEZONE environment variable.
  "timezone": "",

  // "info" or "debug". --verbose forces debug.
  "log_level": "info",

  // ── tmt serve ───────────────────────────────────────────────────────────
  "serve": {
    // Listen address for the HTTP API. Overridden by TMT_ADDR.
    "addr": "127.0.0.1:8787"
  },

  // End-of-day summary of the previous day, written to the log.
  "digest": {
    // Five-field cron expression; "" disables the digest.
    "schedule": "0 0 * * *"
  }
}
`

// BaseDir returns the root config directory (~/.tmt).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tmt"), nil
}

// configFilePath returns the path to ~/.tmt/config.json.
func configFilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tmt/config.json, creating it with annotated defaults on first
// run, then applies environment overrides.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Default(), err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadFile reads the config at path. A missing file is created from the
// annotated template.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = DefaultAddr
	}
	// An explicit "" schedule disables the digest, so only back-fill when the
	// key is absent altogether.
	var keys struct {
		Digest struct {
			Schedule *string `json:"schedule"`
		} `json:"digest"`
	}
	if err := json.Unmarshal(cleaned, &keys); err == nil && keys.Digest.Schedule == nil {
		cfg.Digest.Schedule = DefaultSchedule
	}

	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if tz := os.Getenv("TMT_TIMEZONE"); tz != "" {
		c.Timezone = tz
	}
	if addr := os.Getenv("TMT_ADDR"); addr != "" {
		c.Serve.Addr = addr
	}
}

// Location resolves Timezone. Empty means time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
