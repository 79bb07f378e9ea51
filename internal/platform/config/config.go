package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	TeachersFile string
	StaticDir    string

	// EnforceCapacity rejects signups once an activity reaches
	// max_participants. Off by default to match the historical behavior
	// of the service, which stored the limit but never checked it.
	EnforceCapacity bool
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort: getEnv("API_PORT", "8080"),
		// Shared default secret kept for compatibility with existing
		// deployments; set JWT_SECRET in any real environment.
		JWTKey:          []byte(getEnv("JWT_SECRET", "mergington-high-school-secret-key")),
		JWTExp:          time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 8)) * time.Hour,
		TeachersFile:    getEnv("TEACHERS_FILE", "teachers.json"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		EnforceCapacity: getEnvAsBool("ENFORCE_CAPACITY", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
