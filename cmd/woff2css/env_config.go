package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-woff2css/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // WOFF2CSS_CONFIG: config file name or path
	OutputDir  string // WOFF2CSS_OUTPUT_DIR: default output directory
	Family     string // WOFF2CSS_FAMILY: font-family for every font
	AssetPath  string // WOFF2CSS_ASSET_PATH: specimen asset directory
}

// knownEnvVars lists valid WOFF2CSS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WOFF2CSS_CONFIG":     true,
	"WOFF2CSS_OUTPUT_DIR": true,
	"WOFF2CSS_FAMILY":     true,
	"WOFF2CSS_ASSET_PATH": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("WOFF2CSS_CONFIG"),
		OutputDir:  os.Getenv("WOFF2CSS_OUTPUT_DIR"),
		Family:     os.Getenv("WOFF2CSS_FAMILY"),
		AssetPath:  os.Getenv("WOFF2CSS_ASSET_PATH"),
	}
}

// warnUnknownEnvVars warns about unrecognized WOFF2CSS_* variables.
// Helps catch typos like WOFF2CSS_FAMLY.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "WOFF2CSS_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment variables onto cfg.
// Priority is CLI flags > env vars > config file > defaults; flags are
// applied afterwards by each command.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Family != "" {
		cfg.Font.Family = env.Family
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}

// loadConfig resolves the config named by --config or WOFF2CSS_CONFIG,
// overlays the environment and validates the result.
func loadConfig(flags commonFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
