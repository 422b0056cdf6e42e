package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverPostgres DatabaseDriver = "postgres" // PostgreSQL server (default)
	DriverSQLite   DatabaseDriver = "sqlite"   // Local file, used for development and tests
)

type (
	Config struct {
		HTTP
		Database
		Audit
		Logging
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Driver   DatabaseDriver
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
		Path     string // SQLite file, ignored by postgres
		Rebuild  bool   // Drop and recreate the database and tables on startup
	}
	Audit struct {
		Dir string // Empty disables the request audit trail
	}
	Logging struct {
		Level  string
		Format string // "json" or "console"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// NewConfig builds the configuration from defaults, the optional
// "KEY = value" file at configPath, a .env file and the environment.
// Later sources win.
func NewConfig(configPath string) (*Config, error) {
	// A missing .env is normal outside of local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 5000)
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("db_driver", string(DriverPostgres))
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_pass", "")
	v.SetDefault("db_name", DefaultDatabaseName)
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_path", DefaultDatabasePath)
	v.SetDefault("db_rebuild", false)

	v.SetDefault("audit_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("properties")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{
			Port: v.GetInt32("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: Database{
			Driver:   DatabaseDriver(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Path:     v.GetString("DB_PATH"),
			Rebuild:  v.GetBool("DB_REBUILD"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}
