package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFileVar names a dotenv file to load instead of ./.env.
const envFileVar = "CUTDATA_ENV_FILE"

// loadDotEnv loads environment variables from the dotenv file when present.
// Existing process environment variables are not overridden. A file named
// by CUTDATA_ENV_FILE must exist.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(envFileVar)
	if !explicit || path == "" {
		path = ".env"
		explicit = false
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}
