package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// postgres (default) or sqlite
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	JWTAccessSecret   string
	JWTAccessTTLHours int

	// ✅ Redis Config (rate limiter store, optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config (event notifications, optional)
	KafkaBrokers []string
	KafkaTopic   string

	RateLimitPerMinute int
	CORSOrigins        []string

	// Proxies whose X-Forwarded-For is honored; empty trusts none
	TrustedProxies []string

	// Accounts allowed to read every audit log row
	AdminEmails []string

	// When true only the organizer may update or delete an event
	EnforceOrganizer bool
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(getEnv("JWT_ACCESS_TTL_HOURS", "24"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rateLimit, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "100"))
	enforce, err := strconv.ParseBool(getEnv("EVENTS_ENFORCE_ORGANIZER", "true"))
	if err != nil {
		enforce = true
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPath:     getEnv("DB_PATH", "levelup.db"),

		JWTAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JWTAccessTTLHours: accessTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "levelup.events"),

		RateLimitPerMinute: rateLimit,
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		TrustedProxies:     splitList(os.Getenv("TRUSTED_PROXIES")),
		AdminEmails:        splitList(strings.ToLower(os.Getenv("ADMIN_EMAILS"))),

		EnforceOrganizer: enforce,
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
