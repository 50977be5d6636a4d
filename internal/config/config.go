package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Backend pins the multiplexer ("tmux" or "screen"). The HS_BACKEND
	// environment variable takes precedence over this.
	Backend string `yaml:"backend"`
	// ScreenDir overrides discovery of screen's socket directory.
	ScreenDir string `yaml:"screen_dir"`
}

// Load reads the config from ~/.config/hs/config.yaml.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}

	path := filepath.Join(home, ".config", "hs", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Expand ~ in screen_dir
	if len(cfg.ScreenDir) > 0 && cfg.ScreenDir[0] == '~' {
		cfg.ScreenDir = filepath.Join(home, cfg.ScreenDir[1:])
	}

	return &cfg, nil
}
