package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the process environment, loading a
// .env file first if one is present (ok if missing in prod).
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address
//	DATABASE_URL  PostgreSQL DSN
//	JWT_SECRET    HMAC signing secret (the only source for it)
//	CORS_ORIGIN   allowed browser origins
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
}
