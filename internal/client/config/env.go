package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment variable read by the CLI.
const EnvPrefix = "GOPHSPEND_"

// parseEnv overlays cfg with GOPHSPEND_* variables. A .env file in the
// working directory is loaded first if present; variables already set in
// the process environment win over it.
func parseEnv(cfg *Config) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
