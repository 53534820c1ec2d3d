package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	Env           string
	JWTSecret     string
	TokenTTL      time.Duration
	WeatherAPIKey string
}

func (c AppConfig) Development() bool { return c.Env == "development" }

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
	ttl := 7 * 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err != nil {
			log.Printf("[cfg] bad TOKEN_TTL %q: %v", v, err)
		} else {
			ttl = d
		}
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "UTC"),
		DBPath:        get("DB_PATH", "farmhub.db"),
		Env:           get("APP_ENV", "production"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      ttl,
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),
	}
	log.Printf("[cfg] port=%s db=%s env=%s token_ttl=%s weather_key=%t",
		cfg.Port, cfg.DBPath, cfg.Env, cfg.TokenTTL, cfg.WeatherAPIKey != "")
	return cfg
}
