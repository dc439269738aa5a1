// Package config loads sfwave's YAML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

const maxConfigFileBytes = 1 << 20 // 1MB

// UIConfig holds display tuning. Colors are lipgloss color strings, either
// ANSI palette indexes ("11") or hex ("#f5c542").
type UIConfig struct {
	// SignalListPercentWidth is the share of the terminal width given to
	// the signal name column, in percent.
	SignalListPercentWidth int `yaml:"signal_list_percent_width"`

	PrimaryMarkerColor   string `yaml:"primary_marker_color"`
	SecondaryMarkerColor string `yaml:"secondary_marker_color"`
	DragColor            string `yaml:"drag_color"`
}

// Config is sfwave's runtime configuration. Keys maps action names to key
// strings in Bubble Tea notation ("ctrl+x", "up", "?"); unknown actions are
// ignored and unset actions keep their defaults.
type Config struct {
	UI   UIConfig          `yaml:"ui"`
	Keys map[string]string `yaml:"keys,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			SignalListPercentWidth: 15,
			PrimaryMarkerColor:     "11", // yellow
			SecondaryMarkerColor:   "15", // white
			DragColor:              "12", // blue
		},
		Keys: map[string]string{},
	}
}

// DefaultPath resolves the per-user config file location, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "sfwave", "config.yaml")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields defaults; a file that exists but does not
// parse is an error, because silently ignoring an explicitly written
// config is worse than refusing to start.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %q", path)
	}
	if len(raw) > maxConfigFileBytes {
		return cfg, errors.Errorf("config %q exceeds %d bytes", path, maxConfigFileBytes)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// applyDefaults backfills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.UI.SignalListPercentWidth <= 0 || cfg.UI.SignalListPercentWidth >= 100 {
		cfg.UI.SignalListPercentWidth = def.UI.SignalListPercentWidth
	}
	if cfg.UI.PrimaryMarkerColor == "" {
		cfg.UI.PrimaryMarkerColor = def.UI.PrimaryMarkerColor
	}
	if cfg.UI.SecondaryMarkerColor == "" {
		cfg.UI.SecondaryMarkerColor = def.UI.SecondaryMarkerColor
	}
	if cfg.UI.DragColor == "" {
		cfg.UI.DragColor = def.UI.DragColor
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
}
