package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Token transports supported by the auth module. Deployments disagreed on
// this historically, so it is configuration rather than a hardcoded choice.
const (
	TransportCookie = "cookie"
	TransportHeader = "header"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDBName    string
	JWTSecret      string
	TokenTTL       time.Duration
	TokenTransport string
	AllowedOrigins []string
	RedisHost      string
	RedisPassword  string
	CookieSecure   bool
}

// Load reads .env into the process environment. A missing file is not fatal.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — using system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// New builds Config from the environment with sensible defaults.
func New() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "artizans-mart"),
		JWTSecret:      getEnv("ACCESS_TOKEN_SECRET", "super_secret"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", time.Hour),
		TokenTransport: getEnv("TOKEN_TRANSPORT", TransportCookie),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:5174"}),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CookieSecure:   os.Getenv("APP_ENV") == "production",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
		log.Printf("⚠️  Invalid duration in %s, using default %s", key, def)
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
