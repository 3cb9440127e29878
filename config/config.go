package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                  string
	Port                 string
	DBURL                string
	SQLitePath           string
	JWTSecret            string
	TokenExpiryHours     int
	APIKey               string
	ServiceAccountEmail  string
	RedisAddr            string
	AnalyticsCacheTTLMin int
	AnalyticsRefreshSpec string
}

func Load() *Config {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:                  getEnv("ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		DBURL:                mustGetEnv("DB_URL"),
		SQLitePath:           getEnv("SQLITE_PATH", "todos.db"),
		JWTSecret:            mustGetEnv("JWT_SECRET"),
		TokenExpiryHours:     getEnvAsInt("TOKEN_EXPIRY_HOURS", 24),
		APIKey:               getEnv("API_KEY", ""),
		ServiceAccountEmail:  getEnv("SERVICE_ACCOUNT_EMAIL", "admin@example.com"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		AnalyticsCacheTTLMin: getEnvAsInt("ANALYTICS_CACHE_TTL_MIN", 5),
		AnalyticsRefreshSpec: getEnv("ANALYTICS_REFRESH_SPEC", "*/5 * * * *"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
