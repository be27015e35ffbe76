package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"jobjotter/internal/shared/telemetry"
)

// loadEnvFiles loads each existing file without overriding variables that
// are already set. Missing files are skipped.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			telemetry.Warn("config.env_file_invalid", map[string]any{"path": path, "error": err.Error()})
		}
	}
}
