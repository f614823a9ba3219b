package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
// It is built once in main and passed by reference to every component that
// needs it; nothing reads the environment after startup.
type Config struct {
	ServerPort string
	Env        string
	DBPath     string
	StaticDir  string

	JWTSecret string

	RedisAddr string
	RedisDB   int
	RedisPass string

	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	AdminEmail string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("PORT", "3000"),
		Env:        getEnv("APP_ENV", "development"),
		DBPath:     getEnv("DB_PATH", "terracore.db"),
		StaticDir:  getEnv("STATIC_DIR", "public"),
		JWTSecret:  getEnv("JWT_SECRET", "terracore-secret-key"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		SMTPFrom:   getEnv("SMTP_FROM", "noreply@terracore.com"),
		AdminEmail: getEnv("ADMIN_EMAIL", "info@eloke.co"),
	}
}

// IsDevelopment reports whether the process runs in development mode.
// Error responses carry internal detail only in development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
