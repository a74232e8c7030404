package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	GinMode   string
	JWTSecret string

	SessionStore string
	SQLitePath   string
	MongoURI     string
	DBName       string
	PostgresDSN  string

	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string

	DemoEmail    string
	DemoPassword string
}

// Load reads .env if present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Note: .env file not found (checking system env vars)")
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Println("⚠️  SMTP_PORT is not a number, using 587")
		smtpPort = 587
	}

	return Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      os.Getenv("GIN_MODE"),
		JWTSecret:    getEnv("JWT_SECRET", "traveltales-dev-secret"),
		SessionStore: getEnv("SESSION_STORE", "memory"),
		SQLitePath:   getEnv("SQLITE_PATH", "./session.db"),
		MongoURI:     os.Getenv("MONGO_URI"),
		DBName:       getEnv("DB_NAME", "traveltales"),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		DemoEmail:    getEnv("DEMO_EMAIL", "test@example.com"),
		DemoPassword: getEnv("DEMO_PASSWORD", "Password123"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
