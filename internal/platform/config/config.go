// Package config provides configuration loading and validation for the
// catalog administration module. Configuration is layered:
// defaults -> base.yaml -> {profile}.yaml -> .env file -> env vars.
package config

// Config holds all configuration for the module.
type Config struct {
	Service    ServiceConfig    `koanf:"service"`
	Log        LogConfig        `koanf:"log"`
	Validation ValidationConfig `koanf:"validation"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServiceConfig identifies the running module.
type ServiceConfig struct {
	Name string `koanf:"name"`
}

// LogConfig holds structured logging settings. An empty File logs to stderr.
type LogConfig struct {
	Level    string         `koanf:"level"`
	Format   string         `koanf:"format"`
	File     string         `koanf:"file"`
	Rotation RotationConfig `koanf:"rotation"`
}

// RotationConfig holds log file rotation settings.
type RotationConfig struct {
	MaxSizeMB  int  `koanf:"max_size_mb"`
	MaxBackups int  `koanf:"max_backups"`
	MaxAgeDays int  `koanf:"max_age_days"`
	Compress   bool `koanf:"compress"`
}

// ValidationConfig selects how category validation failures are reported:
// "notification" collects every failure, "throws" stops at the first.
type ValidationConfig struct {
	Mode string `koanf:"mode"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
