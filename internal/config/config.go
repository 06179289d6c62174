package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	SMTP    SMTPConfig
	Admin   AdminConfig
	Session SessionConfig
}

type AppConfig struct {
	Port            string
	Mode            string // gin mode: debug, release, test
	LogFilePath     string
	DBPath          string
	ProfilePath     string
	TrackingEnabled bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	ToEmail  string
}

type AdminConfig struct {
	Username string
	Password string
}

type SessionConfig struct {
	TTL time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	// Missing .env is normal in production; the environment still applies.
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Port:            getEnv("PORT", "8080"),
			Mode:            getEnv("GIN_MODE", "debug"),
			LogFilePath:     getEnv("LOG_FILE_PATH", "portfolio.log"),
			DBPath:          getEnv("DB_PATH", "portfolio.db"),
			ProfilePath:     getEnv("PROFILE_PATH", ""),
			TrackingEnabled: getEnvAsBool("TRACKING_ENABLED", true),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			ToEmail:  getEnv("TO_EMAIL", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Session: SessionConfig{
			TTL: time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		},
	}
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.App.Mode == "release"
}

// getEnv treats an empty variable as unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
