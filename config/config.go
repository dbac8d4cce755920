package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender    string
	SendgridApiKey string

	UploadDir string

	VideoApiURL string // Video platform base URL
	VideoApiKey string // Video platform API key

	PaymentApiURL    string // Payment gateway base URL
	PaymentApiKey    string // Payment gateway key id
	PaymentSecretKey string // Payment gateway key secret
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "coursehub"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@coursehub.in"),
		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		VideoApiURL: getEnv("VIDEO_API_URL", "https://ws.api.video"),
		VideoApiKey: getEnv("VIDEO_API_KEY", ""),

		PaymentApiURL:    getEnv("PAYMENT_API_URL", "https://api.razorpay.com/v1"),
		PaymentApiKey:    getEnv("PAYMENT_API_KEY", ""),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.PaymentApiKey == "" {
		log.Println("Warning: PAYMENT_API_KEY is not set. Checkout will fail until it is configured.")
	}
	if AppConfig.VideoApiKey == "" {
		log.Println("Warning: VIDEO_API_KEY is not set. Video uploads will fail until it is configured.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
