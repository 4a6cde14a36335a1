package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// HTTP Server
	Port string

	// Store
	StoreDriver  string
	PostgresDSN  string
	SQLiteDBPath string
	LoadTimeout  time.Duration

	// Dashboards
	Dashboards       []string
	DefaultSelection map[string][]string
	GeoLookupFile    string

	// Sessions
	SessionTTL      time.Duration
	SessionCapacity int

	LogLevel string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		StoreDriver:  strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		PostgresDSN:  getEnv("POSTGRES_DSN", ""),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/classicmodels.db"),
		LoadTimeout:  getEnvDuration("LOAD_TIMEOUT", 30*time.Second),

		Dashboards: getEnvList("DASHBOARDS", []string{"geography", "productline"}),
		DefaultSelection: map[string][]string{
			"geography":   getEnvList("GEOGRAPHY_DEFAULT_SELECTION", []string{"NYC", "Boston"}),
			"productline": getEnvList("PRODUCTLINE_DEFAULT_SELECTION", []string{"Motorcycles", "Classic Cars"}),
		},
		GeoLookupFile: getEnv("GEO_LOOKUP_FILE", ""),

		SessionTTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		SessionCapacity: getEnvInt("SESSION_CAPACITY", 1024),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StoreDriver {
	case DriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, "POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	case DriverSQLite:
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLITE_DB_PATH cannot be empty when STORE_DRIVER=sqlite")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid store driver '%s': must be one of [%s %s]", c.StoreDriver, DriverPostgres, DriverSQLite))
	}

	if c.LoadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("invalid load timeout %v: must be positive", c.LoadTimeout))
	}

	if len(c.Dashboards) == 0 {
		errs = append(errs, "DASHBOARDS must name at least one dashboard")
	}

	if c.GeoLookupFile != "" {
		if _, err := os.Stat(c.GeoLookupFile); err != nil {
			errs = append(errs, fmt.Sprintf("geo lookup file '%s' is not readable: %v", c.GeoLookupFile, err))
		}
	}

	if c.SessionTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid session ttl %v: must be at least 1 second", c.SessionTTL))
	}
	if c.SessionCapacity < 1 {
		errs = append(errs, fmt.Sprintf("invalid session capacity %d: must be at least 1", c.SessionCapacity))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Addr is the fiber listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// DSN returns the data source for the configured driver.
func (c *Config) DSN() string {
	if c.StoreDriver == DriverPostgres {
		return c.PostgresDSN
	}
	return c.SQLiteDBPath
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
