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
	JWTKey    string
	SaltRound int
	TokenTTL  int // session lifetime in hours

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Rate limiting: base allowance per LimitWindow seconds. Strict applies to
	// level-zero guarded routes, Relaxed to level-one guarded routes. Accounts
	// at limit level 1 get double the allowance.
	LimitWindow  int
	LimitStrict  int
	LimitRelaxed int

	SendGridKey string
	EmailSender string
}

// Load initializes configuration from environment variables or defaults
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),
		TokenTTL:  getEnvInt("TOKEN_TTL_HOURS", 24),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "knowledge_sharing"),
		DBPort:     getEnv("DB_PORT", "5432"),

		LimitWindow:  getEnvInt("LIMIT_WINDOW", 60),
		LimitStrict:  getEnvInt("LIMIT_STRICT", 5),
		LimitRelaxed: getEnvInt("LIMIT_RELAXED", 30),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "no-reply@knowledge-sharing.local"),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	return cfg
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
