package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataDir string
	DBFile  string

	CacheTTLSec    int
	ResolveDelayMS int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		return n
	}
	return def
}

func Load() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir: getenv("WRITEVERSE_DATA_DIR", filepath.Join(home, ".writeverse")),
		DBFile:  getenv("DB_FILE", "writeverse.db"),

		CacheTTLSec:    getenvi("CACHE_TTL_SECONDS", 300),
		ResolveDelayMS: getenvi("RESOLVE_DELAY_MS", 500),
	}
}

// DatabasePath is the sqlite file backing durable local storage.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}
