package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI         string
	MongoDB          string
	RedisAddr        string
	RedisPass        string
	HTTPPort         string
	FrontendURL      string
	GoogleAPIKey     string
	CityProfilesPath string
	LogLevel         string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "food_recommendation"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		CityProfilesPath: os.Getenv("CITY_PROFILES_PATH"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv is only used for keys that have a sensible default. Optional keys
// (Redis, Places API, city profiles) read as plain Getenv: empty disables the
// feature instead of failing.
func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default", key)
		return def
	}
	return v
}
