package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	AIGatewayURL     string
	AIGatewayKey     string
	AIModel          string
	StorageURL       string
	StorageKey       string
	TwilioSID        string
	TwilioToken      string
	TwilioPhone      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AIGatewayURL = GetEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1")
	AIGatewayKey = GetEnv("AI_GATEWAY_KEY")
	AIModel = GetEnv("AI_MODEL", "google/gemini-2.5-flash")
	StorageURL = GetEnv("STORAGE_PROJECT_URL")
	StorageKey = GetEnv("STORAGE_SERVICE_KEY")
	TwilioSID = GetEnv("TWILIO_ACCOUNT_SID")
	TwilioToken = GetEnv("TWILIO_AUTH_TOKEN")
	TwilioPhone = GetEnv("TWILIO_PHONE_NUMBER")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}
	if AIGatewayKey == "" {
		log.Println("⚠️ AI_GATEWAY_KEY is not set, chat assistant will be unavailable")
	}
	if TwilioSID == "" || TwilioToken == "" {
		log.Println("⚠️ Twilio credentials not set, SMS runs in console mode")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
