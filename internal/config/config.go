package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Env          string
	AppSecret    string
	DatabaseURL  string
	JWTExpiry    time.Duration
	Port         string
	TMDBAPIKey   string
	TMDBBaseURL  string
	TMDBImageURL string
	TMDBLanguage string
}

// Load reads configuration from environment variables.
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "72"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "onmovie")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production"))

	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("WARNING: production is running with the default secret. Set APP_SECRET now.")
	}

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		AppSecret:    appSecret,
		DatabaseURL:  dbURL,
		JWTExpiry:    time.Duration(expiryHours) * time.Hour,
		Port:         getEnv("PORT", "8080"),
		TMDBAPIKey:   getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:  getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBImageURL: getEnv("TMDB_IMAGE_URL", "https://image.tmdb.org/t/p/w500"),
		TMDBLanguage: getEnv("TMDB_LANGUAGE", "en-US"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
