package config

import (
	"encoding/json"
	"os"

	"github.com/albertopena123/evaluacion-enla/internal/flagx"
	"github.com/albertopena123/evaluacion-enla/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "8s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	LoginTimeout          timex.Duration `json:"login_timeout"`
	CORSOrigin            string         `json:"cors_origin"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags;
// if neither is set, no JSON file is loaded. An unreadable or malformed
// file panics: a half-applied configuration is worse than no server.
//
// The signing secret is intentionally not accepted from JSON files.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.LoginTimeout.Duration != 0 {
		config.LoginTimeout = c.LoginTimeout.Duration
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
}
