package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	DBConnectionString string
	AssistantBaseURL   string
	AssistantToken     string
	Sync               *SyncConfig
}

func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	dbConnStr := getEnv("DB_CONNECTION_STRING", "")
	baseURL := getEnv("ASSISTANT_BASE_URL", "https://api.aletheia.app")
	token := getEnv("ASSISTANT_TOKEN", "")

	sync := DefaultSyncConfig()
	if v := os.Getenv("SYNC_POLL_INTERVAL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		sync.PollInterval = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv("SYNC_MAX_POLL_ATTEMPTS"); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		sync.MaxPollAttempts = attempts
	}

	return &Config{
		Port:               port,
		DBConnectionString: dbConnStr,
		AssistantBaseURL:   baseURL,
		AssistantToken:     token,
		Sync:               sync,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
