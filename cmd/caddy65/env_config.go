package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // CADDY65_CONFIG: settings file path
	Workers    int    // CADDY65_WORKERS: parallel workers
}

// knownEnvVars lists valid CADDY65_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CADDY65_CONFIG":  true,
	"CADDY65_WORKERS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive worker counts are ignored.
func loadEnvConfig(getenv func(string) string) envConfig {
	cfg := envConfig{ConfigPath: getenv("CADDY65_CONFIG")}
	if workers := getenv("CADDY65_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CADDY65_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, "CADDY65_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}
