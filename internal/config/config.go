package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration. Secret values (passwords, keys)
// are loaded like everything else but must never appear in logs, not even
// truncated.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"debug"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// PostgreSQL
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	// Redis (revoked-token storage)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// JWT
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"` // 7 days

	// Generative backend. The rich path talks to the OpenAI-compatible
	// endpoint, the gateway to the native generateContent endpoint; both are
	// the same provider.
	LLMAPIKey        string        `envconfig:"GEMINI_API_KEY"`
	LLMModel         string        `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`
	LLMBaseURL       string        `envconfig:"LLM_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	LLMOpenAIBaseURL string        `envconfig:"LLM_OPENAI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	LLMTimeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"15s"`
	LLMMaxRetries    int           `envconfig:"LLM_MAX_RETRIES" default:"3"`

	// CORS
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// LoadConfig loads configuration from the environment, optionally pre-seeded
// from a .env file.
func LoadConfig(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	return &cfg, nil
}
