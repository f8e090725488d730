package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	JWTSecret          string
	TokenExpiryMinutes int
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	CloudinaryName     string
	CloudinaryKey      string
	CloudinarySecret   string
	SwaggerHost        string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/contactbook?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		TokenExpiryMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		SMTPHost:           getEnv("SMTP_SERVER", "localhost"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       os.Getenv("SMTP_USERNAME"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		CloudinaryName:     os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:      os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret:   os.Getenv("CLOUDINARY_API_SECRET"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
