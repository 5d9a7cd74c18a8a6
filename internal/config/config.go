package config

import (
	"os"
	"strings"
)

type Config struct {
	SlackSigningSecret string
	Port               string
	ConfigPath         string
	RosterPath         string
	HistoryDBPath      string
	AdminUserIDs       []string
	LogLevel           string
}

func Load() *Config {
	return &Config{
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		ConfigPath:         getEnv("CONFIG_PATH", "data/config.json"),
		RosterPath:         getEnv("ROSTER_PATH", "data/member.json"),
		HistoryDBPath:      getEnv("HISTORY_DB_PATH", "./duty.db"),
		AdminUserIDs:       splitList(getEnv("ADMIN_USER_IDS", "")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
