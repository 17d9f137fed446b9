package config

import (
	"os"
	"strconv"
	"time"
)

const (
	ContentSourceNone     = "none"
	ContentSourceFile     = "file"
	ContentSourcePostgres = "postgres"
	ContentSourceGCS      = "gcs"
	ContentSourceFirebase = "firebase"
)

type Config struct {
	ServerAddr        string
	DatabaseURL       string
	SiteBaseURL       string
	CORSAllowedOrigin string
	LogLevel          string

	GeoLookupURL     string
	GeoLookupTimeout time.Duration

	ContentSource     string
	ContentKey        string
	ContentFile       string
	GCSContentBucket  string
	GCSContentObject  string
	FirebaseKeyPath   string
	FirebaseDatabase  string

	DeliveryBaseURL string

	TelegramBotToken string
	TelegramChatID   int64

	SessionTTL time.Duration
}

func Load() *Config {
	return &Config{
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SiteBaseURL:       getEnv("SITE_BASE_URL", "/"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		GeoLookupURL:      getEnv("GEO_LOOKUP_URL", ""),
		GeoLookupTimeout:  getEnvDuration("GEO_LOOKUP_TIMEOUT", 3*time.Second),
		ContentSource:     getEnv("CONTENT_SOURCE", ContentSourceNone),
		ContentKey:        getEnv("CONTENT_KEY", "whiteboard-content"),
		ContentFile:       getEnv("CONTENT_FILE", "content.json"),
		GCSContentBucket:  getEnv("GCS_CONTENT_BUCKET", ""),
		GCSContentObject:  getEnv("GCS_CONTENT_OBJECT", "whiteboard-content.json"),
		FirebaseKeyPath:   getEnv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", ""),
		FirebaseDatabase:  getEnv("FIREBASE_DATABASE_URL", ""),
		DeliveryBaseURL:   getEnv("DELIVERY_BASE_URL", "https://wa.me/message/DUFCKWYTKH7KC1"),
		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getEnvInt64("TELEGRAM_CHAT_ID", 0),
		SessionTTL:        getEnvDuration("SESSION_TTL", 2*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

var config *Config

func GetConfig() *Config {
	if config == nil {
		config = Load()
	}
	return config
}
