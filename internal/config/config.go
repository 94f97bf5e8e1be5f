package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment. A missing
// .env file is fine; real environment variables always win.
type Config struct {
	Addr         string
	DatabaseURL  string   // empty = in-memory store
	KafkaBrokers []string // empty = events are discarded
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, broker := range strings.Split(brokers, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
