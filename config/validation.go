package config

import "fmt"

// ValidateConfig checks that required settings are present for the current
// environment. Tests run against in-memory databases and skip these checks.
func ValidateConfig(cfg *Config) error {
	if IsTest() {
		return nil
	}

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if IsProduction() && cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required in production")
	}
	return nil
}
