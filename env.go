package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config selects where the histograms live. The query filter is always
// DefaultFilter.
type Config struct {
	Location  string
	AuthToken string
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

// LoadEnv reads the given .env files into the process environment. Files that
// do not exist are skipped, variables already set win.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return err
		}
	}
	return nil
}

func LoadConfig() Config {
	return Config{
		Location:  StringEnv("HIST_DB", "../test.db"),
		AuthToken: StringEnv("TURSO_AUTH_TOKEN", ""),
	}
}
