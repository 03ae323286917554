package config

const (
	defaultRotationMaxSizeMB  = 100
	defaultRotationMaxBackups = 3
	defaultRotationMaxAgeDays = 28
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML,
// the .env file and env vars.
func defaults() map[string]any {
	return map[string]any{
		"service.name": "catalog-admin",

		"log.level":                 "info",
		"log.format":                "json",
		"log.file":                  "",
		"log.rotation.max_size_mb":  defaultRotationMaxSizeMB,
		"log.rotation.max_backups":  defaultRotationMaxBackups,
		"log.rotation.max_age_days": defaultRotationMaxAgeDays,
		"log.rotation.compress":     false,

		"validation.mode": "notification",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "catalog-admin",
	}
}
