package config

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/catalog-admin/internal/domain/validation"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Service.validate(),
		c.Log.validate(),
		c.Validation.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServiceConfig) validate() error {
	if s.Name == "" {
		return errors.New("service.name must not be empty")
	}
	return nil
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	if l.File != "" {
		if l.Rotation.MaxSizeMB < 1 {
			errs = append(errs, fmt.Errorf("log.rotation.max_size_mb must be >= 1, got %d", l.Rotation.MaxSizeMB))
		}
		if l.Rotation.MaxBackups < 0 {
			errs = append(errs, fmt.Errorf("log.rotation.max_backups must be >= 0, got %d", l.Rotation.MaxBackups))
		}
		if l.Rotation.MaxAgeDays < 0 {
			errs = append(errs, fmt.Errorf("log.rotation.max_age_days must be >= 0, got %d", l.Rotation.MaxAgeDays))
		}
	}

	return errors.Join(errs...)
}

func (v *ValidationConfig) validate() error {
	if !validation.Mode(v.Mode).IsValid() {
		return fmt.Errorf("validation.mode must be one of: %s, %s; got %q",
			validation.ModeNotification, validation.ModeThrows, v.Mode)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
