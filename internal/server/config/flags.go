package config

import (
	"flag"
	"os"
	"time"

	"github.com/albertopena123/evaluacion-enla/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-t int      session token validity, hours
//	-l int      login handshake timeout, seconds
//	-o string   allowed CORS origins (comma-separated)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
// The signing secret is intentionally not accepted as a flag: it would leak
// into process listings.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity duration (in hours)")
	loginTimeout := fs.Int("l", int(config.LoginTimeout.Seconds()), "login timeout (in seconds)")

	fs.StringVar(&config.CORSOrigin, "o", config.CORSOrigin, "allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
	config.LoginTimeout = time.Duration(*loginTimeout) * time.Second
}
