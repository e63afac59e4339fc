/*
Package config loads server configuration from the environment.

PURPOSE:
  A .env file (if present) is loaded first, then real environment
  variables take precedence. Command-line flags in cmd/server override
  both.

VARIABLES:
  PORT     HTTP server port (default: 8080)
  DB_PATH  SQLite database path (default: shiftpay.db)
*/
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server configuration.
type Config struct {
	Port   int
	DBPath string
}

// Load reads configuration from .env and the environment.
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:   8080,
		DBPath: "shiftpay.db",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	return cfg, nil
}
