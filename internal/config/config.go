// Package config loads and persists lodestar configuration: the active
// theme variant, the history database location, and keybinding overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Theme       string
	History     HistoryConfig
	Keybindings []KeybindingOverride
}

// HistoryConfig holds the sqlite invocation-history settings.
type HistoryConfig struct {
	Path string
}

// KeybindingOverride rebinds one scope/action pair. The palette shortcut
// lives here, so the modifier is configuration rather than a platform
// constant.
type KeybindingOverride struct {
	Scope  string
	Action string
	Keys   []string
}

// Load reads configuration from file and env. Env var overrides use prefix
// LODESTAR_. A missing config file is fine; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("theme", "dark")
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "lodestar", "history.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LODESTAR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lodestar"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LODESTAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes theme and history settings to disk, creating the config
// directory if needed. Existing keys (keybinding overrides included) are
// read first and carried through.
func Save(cfg Config) error {
	path := os.Getenv("LODESTAR_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "lodestar", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	_ = v.ReadInConfig()
	v.Set("theme", cfg.Theme)
	v.Set("history.path", cfg.History.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
