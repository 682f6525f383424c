package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces the server's environment variables.
const EnvPrefix = "GOPHSPEND_API_"

// parseEnv overlays config with GOPHSPEND_API_* variables, after loading an
// optional .env file.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
