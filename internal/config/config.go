package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port           string
	JWTSecret      string
	AccessTokenTTL time.Duration
	CEPBaseURL     string
	AllowedOrigins []string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev-only-secret"),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 12, time.Hour),
		CEPBaseURL:     getEnvOrDefault("CEP_BASE_URL", "https://viacep.com.br"),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getListEnv(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
