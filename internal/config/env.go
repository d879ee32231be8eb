package config

import (
	"os"

	"github.com/joho/godotenv"

	apperrors "voice2site/internal/app/errors"
)

// DefaultEnvFiles are tried in order by LoadEnv
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnv loads the first existing env file from paths (DefaultEnvFiles when empty).
// Variables already set in the process environment are never overridden.
// It returns the file that was loaded, or "" when none exists.
func LoadEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = DefaultEnvFiles
	}

	for _, envPath := range paths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", apperrors.Wrapf(err, "error loading %s file", envPath)
		}
		return envPath, nil
	}
	return "", nil
}
