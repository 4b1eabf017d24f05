package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config gathers everything the process reads from the environment so the
// rest of the code receives values instead of calling os.Getenv.
type Config struct {
	Port   string
	AppEnv string

	// Document store
	KVRestURL   string
	KVRestToken string

	// Admin credential pair. Demo-grade static auth; see AuthUC.
	AdminUser string
	AdminPass string

	// Upload storage
	StorageDir string

	// Order notification mail (optional; disabled when host is empty)
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	OrderNotifyTo string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        os.Getenv("APP_ENV"),
		KVRestURL:     os.Getenv("KV_REST_API_URL"),
		KVRestToken:   os.Getenv("KV_REST_API_TOKEN"),
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPass:     getEnv("ADMIN_PASS", "intech2024"),
		StorageDir:    getEnv("STORAGE_DIR", "uploads"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		OrderNotifyTo: os.Getenv("ORDER_NOTIFY_TO"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
