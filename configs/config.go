package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads a configuration value from .env or the process environment.
func Config(key string) string {
	loadOnce.Do(func() {
		_ = godotenv.Load(".env")
	})
	return os.Getenv(key)
}
