package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingEnv = errors.New("missing required environment variable")

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	MigrationsPath string
	LogLevel       string

	CookieSecure   bool
	CookieSameSite http.SameSite
	CORSOrigins    []string

	LoginRateLimitRPS   float64
	LoginRateLimitBurst int

	RedisAddr string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	EmailFrom     string
	EmailFromName string
}

// Load reads configuration from the environment (and a .env file when
// present). JWT_SECRET, DATABASE_URL and PORT are mandatory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),

		CookieSecure:   getBool("COOKIE_SECURE", false),
		CookieSameSite: parseSameSite(getEnv("COOKIE_SAMESITE", "lax")),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),

		LoginRateLimitRPS:   getFloat("LOGIN_RATE_LIMIT_RPS", 1),
		LoginRateLimitBurst: getInt("LOGIN_RATE_LIMIT_BURST", 5),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		EmailFrom:     getEnv("EMAIL_FROM", "noreply@fitlife.local"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "FitLife"),
	}

	var missing []string
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.Port == "" {
		missing = append(missing, "PORT")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// EmailEnabled reports whether reminder e-mails can be delivered.
func (c *Config) EmailEnabled() bool {
	return c.RedisAddr != "" && c.SMTPHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
