package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application. It is loaded once at
// startup and treated as immutable afterwards.
type Config struct {
	Port          string
	Origin        string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	JWTExpiry     time.Duration
	CloudinaryURL string
}

// Load reads the configuration from environment variables. MONGO_URI and
// JWT_SECRET are required; everything else has a default.
func Load() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	jwtExpiryHours, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
	}

	return &Config{
		Port:          getEnv("API_PORT", "8080"),
		Origin:        getEnv("CORS_ORIGIN", "http://localhost:5173"),
		MongoURI:      mongoURI,
		MongoDatabase: getEnv("MONGO_DATABASE", "hospital_management_system"),
		JWTSecret:     jwtSecret,
		JWTExpiry:     time.Duration(jwtExpiryHours) * time.Hour,
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}, nil
}

// getEnv returns the environment variable value or a default when unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
