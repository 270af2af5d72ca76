// Package config provides configuration structures and validation for
// the application: logging, the fixed bank parameters and the demo
// seed toggle.
package config

import (
	"errors"
	"strings"
)

// Config holds the complete application configuration. It is validated
// during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Bank        BankConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// BankConfig contains the bank's fixed operating parameters.
type BankConfig struct {
	DefaultAgency  string // branch code stamped on every account
	SeedDemoData   bool   // load the reproducible demo fixture on startup
	StatementLimit int    // maximum entries rendered per statement
}

// validate checks that all configuration values meet minimum
// requirements.
func (c *Config) validate() error {
	var validationErrors []string

	if c.Bank.DefaultAgency == "" {
		validationErrors = append(validationErrors, "BANK_DEFAULT_AGENCY is required")
	}
	if c.Bank.StatementLimit <= 0 {
		validationErrors = append(validationErrors, "BANK_STATEMENT_LIMIT must be greater than 0")
	}
	if c.Application.Name == "" {
		validationErrors = append(validationErrors, "APP_NAME is required")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
