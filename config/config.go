package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StaticRoot    string
	BaseURL       string
	AdminPassword string
	// MaxContentLength caps the whole request body; MaxFileSize caps a
	// single uploaded file.
	MaxContentLength int64
	MaxFileSize      int64
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return &Config{
		Port:             getenv("PORT", "8000"),
		StaticRoot:       getenv("STATIC_ROOT", "static"),
		BaseURL:          getenv("BASE_URL", ""),
		AdminPassword:    getenv("ADMIN_PASSWORD", "epicadmin"),
		MaxContentLength: getenvBytes("MAX_CONTENT_LENGTH", 50<<20),
		MaxFileSize:      getenvBytes("MAX_FILE_SIZE", 10<<20),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBytes(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
