package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Target defines one navigation destination the palette can jump to.
// Keywords are extra search terms; they never render.
type Target struct {
	Title    string   `toml:"title"`
	Route    string   `toml:"route"`
	Keywords []string `toml:"keywords"`
}

// targetsFile is the top-level TOML structure.
type targetsFile struct {
	Target []Target `toml:"target"`
}

const defaultTargetsTOML = `# Lodestar navigation targets
# Add new [[target]] blocks to expose more views in the command palette.

[[target]]
title = "Dashboard"
route = "dashboard"
keywords = ["home", "overview"]

[[target]]
title = "Clusters"
route = "clusters"
keywords = ["servers", "nodes"]

[[target]]
title = "Services"
route = "services"
keywords = ["apps", "deployments"]

[[target]]
title = "Logs"
route = "logs"
keywords = ["tail", "events"]

[[target]]
title = "Settings"
route = "settings"
keywords = ["preferences", "config"]
`

// targetsPath returns the full path to the targets.toml file, using the
// user config dir.
func targetsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "lodestar", "targets.toml"), nil
}

// LoadTargets loads navigation target definitions from the config file.
// If the file doesn't exist, it is created with the default set.
func LoadTargets() ([]Target, error) {
	path, err := targetsPath()
	if err != nil {
		return DefaultTargets(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return DefaultTargets(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultTargetsTOML), 0o644); wErr != nil {
			return DefaultTargets(), fmt.Errorf("write default targets: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTargets(), fmt.Errorf("read targets: %w", err)
	}
	return ParseTargets(data)
}

// ParseTargets parses TOML bytes into target definitions.
func ParseTargets(data []byte) ([]Target, error) {
	var f targetsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse targets.toml: %w", err)
	}
	if len(f.Target) == 0 {
		return nil, fmt.Errorf("no targets defined in config")
	}
	for i, t := range f.Target {
		if t.Title == "" {
			return nil, fmt.Errorf("target[%d]: title is required", i)
		}
		if t.Route == "" {
			return nil, fmt.Errorf("target[%d] %q: route is required", i, t.Title)
		}
	}
	return f.Target, nil
}

// DefaultTargets returns the built-in view set.
func DefaultTargets() []Target {
	return []Target{
		{Title: "Dashboard", Route: "dashboard", Keywords: []string{"home", "overview"}},
		{Title: "Clusters", Route: "clusters", Keywords: []string{"servers", "nodes"}},
		{Title: "Services", Route: "services", Keywords: []string{"apps", "deployments"}},
		{Title: "Logs", Route: "logs", Keywords: []string{"tail", "events"}},
		{Title: "Settings", Route: "settings", Keywords: []string{"preferences", "config"}},
	}
}
