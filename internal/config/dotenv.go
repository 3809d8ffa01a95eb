package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

var logf = log.Printf

// loadDotEnv loads variables from .env without overriding ones already set.
// slog is not configured yet at this point, so the standard logger is used.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logf("No .env file found, relying on environment variables")
			return
		}
		logf("Could not parse .env file: %v", err)
	}
}
