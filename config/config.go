package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB          DBConfig
	LogLevel    string
	AutoMigrate bool
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DSN returns the pgx connection string for this database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}

// Load builds the configuration from the three positional arguments
// (database name, port, user) plus optional environment overrides.
// A .env file is honored when present.
func Load(dbname, port, user string) (*Config, error) {
	_ = godotenv.Load()

	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 {
		return nil, fmt.Errorf("invalid port %q", port)
	}
	if dbname == "" {
		return nil, fmt.Errorf("database name is required")
	}
	if user == "" {
		return nil, fmt.Errorf("database user is required")
	}

	auto := strings.TrimSpace(os.Getenv("AUTO_MIGRATE"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     p,
			User:     user,
			Password: getEnv("DB_PASSWORD", ""),
			Database: dbname,
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AutoMigrate: auto == "1" || strings.EqualFold(auto, "true"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
