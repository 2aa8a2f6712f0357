package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvDatabaseDSN names the variable holding the PostgreSQL DSN.
const EnvDatabaseDSN = "BLOG_DB"

// loadDotEnv is a seam for tests. A missing .env file is not an error.
var loadDotEnv = func() { _ = godotenv.Load() }

// parseEnv reads an optional .env file into the process environment and then
// overlays BLOG_DB onto DatabaseDSN.
func parseEnv(config *Config) {
	loadDotEnv()

	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok && v != "" {
		config.DatabaseDSN = v
	}
}
