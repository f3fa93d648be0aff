package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_DRIVER  string
	DB_URL     string
	JWT_SECRET string

	ROOT_DOMAIN string
	CORS_ORIGIN string

	BLOB_DIR      string
	BLOB_BASE_URL string

	LOG_LEVEL string
	GIN_MODE  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = getEnv("DB_DRIVER", "postgres")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	ROOT_DOMAIN = getEnv("ROOT_DOMAIN", "theartistt.com")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "")

	BLOB_DIR = getEnv("BLOB_DIR", "./data/blobs")
	BLOB_BASE_URL = getEnv("BLOB_BASE_URL", "/blobs")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	GIN_MODE = getEnv("GIN_MODE", "debug")

	if DB_DRIVER != "postgres" && DB_DRIVER != "sqlite" {
		log.Fatalf("Unsupported DB_DRIVER %q (want postgres or sqlite)", DB_DRIVER)
	}
}

// LoadDatabaseEnv is the subset the migrate and import commands need.
func LoadDatabaseEnv() {
	_ = godotenv.Load()

	DB_DRIVER = getEnv("DB_DRIVER", "postgres")
	DB_URL = mustEnv("DB_URL")
	ROOT_DOMAIN = getEnv("ROOT_DOMAIN", "theartistt.com")
	BLOB_DIR = getEnv("BLOB_DIR", "./data/blobs")
	BLOB_BASE_URL = getEnv("BLOB_BASE_URL", "/blobs")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
