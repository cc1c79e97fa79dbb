package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	HTTPPort   string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	Debug      bool
}

func Load() *Config {
	// Missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "quicksurvey"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTL:   getDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost: getInt("BCRYPT_COST", bcrypt.DefaultCost),
		Debug:      getEnv("DEBUG", "") != "",
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
