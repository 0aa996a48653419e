package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order; godotenv never overrides a variable that is
// already set, so earlier files and the process environment take precedence.
var envFiles = []string{".env.local", ".env"}

// loadEnvFiles loads the env files found in dir and returns the ones loaded.
func loadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		slog.Debug("Loaded environment file", slog.String("path", p))
		loaded = append(loaded, p)
	}
	return loaded, nil
}
