package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	PostgreSQL  string
	RedisURL    string
	NatsURL     string
	JWTSecret   string
	EmailAPIKey string
	EmailSender string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		PostgreSQL:  os.Getenv("PostgreSQL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		NatsURL:     os.Getenv("NATS_URL"),
		JWTSecret:   os.Getenv("JWTSECRETKEY"),
		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailSender: os.Getenv("EMAIL_SENDER"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
