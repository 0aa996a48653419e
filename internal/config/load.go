package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Load reads, expands, defaults and validates the configuration at path.
//
// Environment files next to the config are loaded first so that ${VAR}
// references in the YAML can be satisfied from them.
func Load(path string) (*Config, error) {
	if _, err := loadEnvFiles(filepath.Dir(path)); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to load environment file").
			Fatal().
			WithContext("path", filepath.Dir(path)).
			Build()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").WithContext("path", path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	resolveRelativePaths(cfg, filepath.Dir(path))

	slog.Debug("Loaded configuration",
		slog.String("path", path),
		slog.String("theme", string(cfg.Theme.ThemeType())),
		slog.Int("nav_items", len(cfg.Nav)))
	return cfg, nil
}

// Parse decodes a YAML document, applies defaults and validates it.
// No environment expansion or path resolution happens here.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration").Fatal().Build()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveRelativePaths anchors directory settings at the config file's directory.
func resolveRelativePaths(cfg *Config, base string) {
	if !filepath.IsAbs(cfg.ContentDir) {
		cfg.ContentDir = filepath.Join(base, cfg.ContentDir)
	}
	for i := range cfg.Sidebar.Auto {
		if d := cfg.Sidebar.Auto[i].Dir; d != "" && !filepath.IsAbs(d) {
			cfg.Sidebar.Auto[i].Dir = filepath.Join(base, d)
		}
	}
}
