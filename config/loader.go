package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	// ProjectConfigFile is the name of the config file searched for
	ProjectConfigFile = "entityloader.yaml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "ENTITYLOADER_"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	// environment replaces the process environment when set.
	environment map[string]string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Config file (path, or entityloader.yaml in current or parent directories)
// 3. Environment variables (ENTITYLOADER_*)
//
// The result is not validated; callers apply command-line overrides first.
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = l.findProjectConfig()
	}
	if path != "" {
		if err := config.mergeFile(path); err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config file", slog.String("path", path))
	} else {
		l.logger.Debug("No config file found")
	}

	if err := l.ApplyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overlays ENTITYLOADER_* environment variables onto config.
func (l *Loader) ApplyEnv(config *Config) error {
	opts := env.Options{Prefix: EnvPrefix}
	if l.environment != nil {
		opts.Environment = l.environment
	}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// findProjectConfig searches for entityloader.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return ""
}
