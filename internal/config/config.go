package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	AppName       string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		AppName:       getenv("APP_NAME", "DonePath"),
		PostgresDSN:   getenv("POSTGRES_DSN", ""),
		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
