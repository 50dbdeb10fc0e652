package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	DatabaseURL string

	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  string

	RedisURL string

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Port:               getenv("PORT", "5000"),
		GinMode:            getenv("GIN_MODE", ""),
		DatabaseURL:        databaseURL(),
		EmailUser:          getenv("EMAIL_USER", ""),
		EmailPass:          getenv("EMAIL_PASS", ""),
		SMTPHost:           getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getenv("SMTP_PORT", "587"),
		RedisURL:           getenv("REDIS_URL", ""),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func databaseURL() string {
	if dsn := getenv("DATABASE_URL", ""); dsn != "" {
		return dsn
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", ""),
		getenv("DB_NAME", "bus_travel"),
		getenv("DB_PORT", "5432"),
	)
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
