package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	JWTSecret    string
	SyncEndpoint string
	SyncToken    string
	PullInterval time.Duration
	PushDebounce time.Duration
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
	dur := func(k, def string) time.Duration {
		d, err := time.ParseDuration(get(k, def))
		if err != nil {
			log.Printf("[cfg] bad duration for %s, using %s: %v", k, def, err)
			d, _ = time.ParseDuration(def)
		}
		return d
	}
	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "Asia/Kolkata"),
		DBPath:       get("DB_PATH", "vora.db"),
		JWTSecret:    get("JWT_SECRET", "vora-dev-secret"),
		SyncEndpoint: get("SYNC_ENDPOINT", "https://api.npoint.io"),
		SyncToken:    get("SYNC_TOKEN", ""),
		PullInterval: dur("SYNC_PULL_INTERVAL", "15s"),
		PushDebounce: dur("SYNC_PUSH_DEBOUNCE", "2s"),
	}
	log.Printf("[cfg] port=%s db=%s sync=%s pull=%s debounce=%s",
		cfg.Port, cfg.DBPath, cfg.SyncEndpoint, cfg.PullInterval, cfg.PushDebounce)
	return cfg
}
