package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// Webhook configuration
	VerifyToken string

	// WhatsApp Cloud API configuration
	AccessToken   string
	PhoneNumberID string
	GraphVersion  string

	// Gemini fallback configuration
	GeminiAPIKey string
	GeminiModel  string

	// Document source configuration. MongoURI is optional; when empty the
	// JSON data file is the source.
	DataFile      string
	MongoURI      string
	DatabaseName  string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		VerifyToken:   getEnv("WEBHOOK_VERIFY_TOKEN", "webhook_verify_token"),
		AccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		PhoneNumberID: getEnv("PHONE_NUMBER_ID", ""),
		GraphVersion:  getEnv("GRAPH_API_VERSION", "v18.0"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		DataFile:      getEnv("FINANCIAL_DATA_FILE", "financial_data.json"),
		MongoURI:      getEnv("MONGO_URI", ""),
		DatabaseName:  getEnv("MONGO_DB_NAME", "finlit_bot"),
		Port:          getEnv("PORT", "8080"),
	}

	// Validate required configuration
	if cfg.AccessToken == "" {
		slog.Error("WHATSAPP_ACCESS_TOKEN not set")
	}
	if cfg.PhoneNumberID == "" {
		slog.Error("PHONE_NUMBER_ID not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
