package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	defaultDotEnv    = ".env"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir  string
	dotEnvPath string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithDotEnv sets the .env file read before process env vars. Defaults to
// ".env" in the working directory; a missing file is skipped. An empty path
// disables the layer.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) {
		o.dotEnvPath = path
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/base.yaml)
//  3. Profile config ({configDir}/{profile}.yaml)
//  4. APP_ entries of the .env file
//  5. Environment variables (APP_ prefix)
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_LOG_LEVEL                  -> log.level
//	APP_VALIDATION_MODE            -> validation.mode
//	APP_LOG_ROTATION_MAX_SIZE_MB   -> log.rotation.max_size_mb
//	APP_TELEMETRY_SERVICE_NAME     -> telemetry.service_name
//
// The .env file never modifies the process environment.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, dotEnvPath: defaultDotEnv}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Layer 2: Base config (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	// Layer 3: Profile-specific config.
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
	}

	// Build a reverse lookup from known koanf keys so that env vars like
	// APP_LOG_ROTATION_MAX_SIZE_MB resolve to "log.rotation.max_size_mb"
	// instead of being ambiguously split on every underscore.
	envLookup := buildEnvLookup(k.Keys())

	// Layer 4: .env file.
	if err := loadDotEnv(k, o.dotEnvPath, envLookup); err != nil {
		return nil, err
	}

	// Layer 5: Environment variables with APP_ prefix.
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return toKoanfKey(key, envLookup), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv applies the APP_ entries of the .env file at path. A missing
// file is not an error.
func loadDotEnv(k *koanf.Koanf, path string, envLookup map[string]string) error {
	if path == "" {
		return nil
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	for key, value := range vars {
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		if err := k.Set(toKoanfKey(key, envLookup), value); err != nil {
			return fmt.Errorf("applying %s from %s: %w", key, path, err)
		}
	}
	return nil
}

// toKoanfKey maps APP_LOG_LEVEL to log.level using the known-key lookup,
// falling back to replacing every underscore with a dot.
func toKoanfKey(key string, envLookup map[string]string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if koanfKey, ok := envLookup[key]; ok {
		return koanfKey
	}
	return strings.ReplaceAll(key, "_", ".")
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "log.rotation.max_size_mb", the env form
// "log_rotation_max_size_mb" is computed by replacing dots with underscores.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
