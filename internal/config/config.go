package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Input source
	DataSource  string // "csv" or "sqlite"
	CSVPath     string
	SQLitePath  string
	SQLiteTable string

	// Report definition
	ReportConfigPath string // optional YAML overrides
	PreviewRows      int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataSource:  getEnv("DATA_SOURCE", "csv"),
		CSVPath:     getEnv("CSV_PATH", "./data/coffee.csv"),
		SQLitePath:  getEnv("SQLITE_DB_PATH", "./data/coffee.db"),
		SQLiteTable: getEnv("SQLITE_TABLE", "transactions"),

		ReportConfigPath: getEnv("REPORT_CONFIG", ""),
		PreviewRows:      getEnvInt("PREVIEW_ROWS", 100),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataSource {
	case "csv":
		if c.CSVPath == "" {
			errors = append(errors, "CSV path cannot be empty when using csv source")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite source")
		}
		if c.SQLiteTable == "" {
			errors = append(errors, "SQLite table name cannot be empty when using sqlite source")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data source '%s': must be one of [csv sqlite]", c.DataSource))
	}

	if c.ReportConfigPath != "" {
		if _, err := os.Stat(c.ReportConfigPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("report config file does not exist: %s", c.ReportConfigPath))
		}
	}

	if c.PreviewRows < 0 {
		errors = append(errors, fmt.Sprintf("invalid preview rows %d: must be non-negative", c.PreviewRows))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
