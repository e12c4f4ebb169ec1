package config

import (
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with GOPHVAULT_* environment variables.
//
// When -env-file is given that file is loaded first and must exist;
// otherwise a .env in the working directory is loaded if present. Values
// already set in the process environment win over the file. Invalid values
// cause a panic, like the other configuration layers.
func parseEnv(config *Config) {
	if path := flagx.EnvFilePath(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	err := envdecode.Decode(config)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		panic(err)
	}
}
