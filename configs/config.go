package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads key from .env, falling back to the process environment.
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigDefault reads key, returning fallback when the variable is unset.
func ConfigDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
