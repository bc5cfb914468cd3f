package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Env      string // dev|prod
	Timezone string
	DBPath   string
	SeedDemo bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Env:      get("APP_ENV", "dev"),
		Timezone: get("TZ", "Asia/Kolkata"),
		DBPath:   get("DB_PATH", "crm.db"),
		SeedDemo: get("SEED_DEMO", "false") == "true",
	}
	return cfg
}
