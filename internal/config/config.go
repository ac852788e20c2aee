package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	LLM            LLMConfig
	CircuitBreaker CircuitBreakerConfig
	Storage        StorageConfig
	Session        SessionConfig
	RateLimit      RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

type LLMConfig struct {
	Provider     string
	Model        string
	Temperature  float32
	Timeout      time.Duration
	GroqAPIKey   string
	GroqBaseURL  string
	GeminiAPIKey string
}

type CircuitBreakerConfig struct {
	Enabled          bool
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	MinRequests      uint32
	FailureThreshold float64
}

type StorageConfig struct {
	Driver          string
	UploadPath      string
	MaxFileSize     int64
	PersistUploads  bool
	VerifySignature bool
	S3              S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string
}

type SessionConfig struct {
	Expiration           time.Duration
	CookieName           string
	CookieSecure         bool
	RequireResumeForChat bool
}

type RateLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
}

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

var defaultModels = map[string]string{
	ProviderGroq:   "llama-3.1-8b-instant",
	ProviderGemini: "gemini-2.5-flash",
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "interview_assistant"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "30m"),
			ConnectTimeout:  getEnvAsDuration("DB_CONNECT_TIMEOUT", "5s"),
		},
		LLM: LLMConfig{
			Provider:     provider,
			Model:        getEnv("LLM_MODEL", defaultModels[provider]),
			Temperature:  getEnvAsFloat32("LLM_TEMPERATURE", 0.7),
			Timeout:      getEnvAsDuration("LLM_TIMEOUT", "60s"),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:  getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		},
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:          getEnvAsBool("CB_ENABLED", true),
			MaxRequests:      uint32(getEnvAsInt("CB_MAX_REQUESTS", 1)),
			Interval:         getEnvAsDuration("CB_INTERVAL", "60s"),
			Timeout:          getEnvAsDuration("CB_TIMEOUT", "30s"),
			MinRequests:      uint32(getEnvAsInt("CB_MIN_REQUESTS", 5)),
			FailureThreshold: getEnvAsFloat64("CB_FAILURE_THRESHOLD", 0.6),
		},
		Storage: StorageConfig{
			Driver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverLocal)),
			UploadPath:      getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			PersistUploads:  getEnvAsBool("PERSIST_UPLOADS", true),
			VerifySignature: getEnvAsBool("VERIFY_FILE_SIGNATURE", false),
			S3: S3Config{
				Bucket:    getEnv("S3_BUCKET", ""),
				Region:    getEnv("S3_REGION", "auto"),
				Endpoint:  getEnv("S3_ENDPOINT", ""),
				AccessKey: getEnv("S3_ACCESS_KEY", ""),
				SecretKey: getEnv("S3_SECRET_KEY", ""),
				Prefix:    getEnv("S3_PREFIX", "uploads/"),
			},
		},
		Session: SessionConfig{
			Expiration:           getEnvAsDuration("SESSION_EXPIRATION", "24h"),
			CookieName:           getEnv("SESSION_COOKIE_NAME", "session_id"),
			CookieSecure:         getEnvAsBool("SESSION_COOKIE_SECURE", false),
			RequireResumeForChat: getEnvAsBool("REQUIRE_RESUME_FOR_CHAT", true),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			Max:     getEnvAsInt("RATE_LIMIT_MAX", 30),
			Window:  getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),
		},
	}
}

// Validate reports settings that would make the server unusable at startup.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq:
		if c.LLM.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when LLM_PROVIDER=%s", ProviderGroq)
		}
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q (expected %s or %s)", c.LLM.Provider, ProviderGroq, ProviderGemini)
	}

	switch c.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=%s", StorageDriverS3)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
