package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file using the provided
// base name, falling back to environment variables and defaults.
func LoadConfig(configName string) (*Config, error) {
	configFileName := fmt.Sprintf("%s.env", configName)
	return loadConfig(configFileName, "env")
}

// loadConfig handles configuration loading from files and environment
// variables. It implements a layered approach:
// 1. Load defaults
// 2. Override with config file values (if found)
// 3. Override with environment variables
// 4. Validate the final configuration
func loadConfig(configName, configType string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	// Config paths in order of priority
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Printf("INFO: No config file '%s' found, relying on environment variables and defaults.\n", configName)
		} else {
			fmt.Printf("WARNING: Error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Printf("INFO: Config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Bank: BankConfig{
			DefaultAgency:  v.GetString("BANK_DEFAULT_AGENCY"),
			SeedDemoData:   v.GetBool("BANK_SEED_DEMO_DATA"),
			StatementLimit: v.GetInt("BANK_STATEMENT_LIMIT"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with sensible default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "banco-simulado")

	v.SetDefault("LOG_LEVEL", "info")

	// Bank defaults mirror the reference deployment: a single branch
	// and a seeded demo dataset.
	v.SetDefault("BANK_DEFAULT_AGENCY", "0001")
	v.SetDefault("BANK_SEED_DEMO_DATA", true)
	v.SetDefault("BANK_STATEMENT_LIMIT", 10)
}
