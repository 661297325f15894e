package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type MongoConfig struct {
	URI      string
	Database string
	// Timeout bounds every store operation issued by a request handler.
	Timeout time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "bookstore"),
			Timeout:  time.Duration(getEnvAsInt("MONGO_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "dev_secret_key_change_this"),
			Expiry: time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 2)) * time.Hour,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
