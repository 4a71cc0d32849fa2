package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig holds the tunables of the booking engine. All of them come
// from the environment, with sensible defaults.
type AppConfig struct {
	SlotStepMinutes int           // stride between slot candidates
	BufferMinutes   int           // gap between consecutive appointments
	RetentionWindow time.Duration // conversation state lifetime
	HistoryLimit    int           // retained messages per customer
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		SlotStepMinutes: getEnvInt("SLOT_STEP_MINUTES", 30),
		BufferMinutes:   getEnvInt("BUFFER_MINUTES", 15),
		RetentionWindow: time.Duration(getEnvInt("CONVERSATION_RETENTION_HOURS", 24)) * time.Hour,
		HistoryLimit:    getEnvInt("CONVERSATION_HISTORY_LIMIT", 20),
	}
}

func getEnvInt(key string, fallback int) int {
	if env := os.Getenv(key); env != "" {
		if v, err := strconv.Atoi(env); err == nil {
			return v
		}
	}
	return fallback
}
