// Package config loads and saves the samattendx toml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all samattendx configuration.
type Config struct {
	Attendance AttendanceConfig `toml:"attendance"`
	Appearance AppearanceConfig `toml:"appearance"`
	General    GeneralConfig    `toml:"general"`
}

// AttendanceConfig holds the accounting policy knobs.
type AttendanceConfig struct {
	// TargetPercent is the attendance target the predictor and the skip
	// budget are computed against (0-100).
	TargetPercent float64 `toml:"target_percent"`
	// Denominator selects the percentage policy: "scheduled" divides by
	// every period the timetable schedules; "taken" divides by periods
	// where attendance was recorded.
	Denominator string `toml:"denominator"`
	// OverallIncludeEmptyMonths also counts record-free months inside
	// the semester range toward the overall denominator.
	OverallIncludeEmptyMonths bool `toml:"overall_include_empty_months"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Attendance: AttendanceConfig{
			TargetPercent: 75,
			Denominator:   "scheduled",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "samattendx")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "samattendx")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns where the attendance database lives: the configured
// override, or the XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "samattendx")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "samattendx")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
