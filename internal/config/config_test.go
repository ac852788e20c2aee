package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("UPLOAD_PATH", "")
	t.Setenv("SESSION_EXPIRATION", "")
	t.Setenv("REQUIRE_RESUME_FOR_CHAT", "")

	cfg := Load()

	assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, float32(0.7), cfg.LLM.Temperature)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.PersistUploads)
	assert.False(t, cfg.Storage.VerifySignature)
	assert.Equal(t, 24*time.Hour, cfg.Session.Expiration)
	assert.True(t, cfg.Session.RequireResumeForChat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("PERSIST_UPLOADS", "false")
	t.Setenv("RATE_LIMIT_MAX", "7")
	t.Setenv("CB_FAILURE_THRESHOLD", "0.25")

	cfg := Load()

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.Storage.PersistUploads)
	assert.Equal(t, 7, cfg.RateLimit.Max)
	assert.Equal(t, 0.25, cfg.CircuitBreaker.FailureThreshold)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("MAX_FILE_SIZE", "big")
	t.Setenv("DB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.False(t, cfg.Database.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name: "groq with key",
			mutate: func(c *Config) {
				c.LLM.Provider = ProviderGroq
				c.LLM.GroqAPIKey = "gsk_test"
			},
		},
		{
			name: "groq without key",
			mutate: func(c *Config) {
				c.LLM.Provider = ProviderGroq
				c.LLM.GroqAPIKey = ""
			},
			errorMsg: "GROQ_API_KEY is required",
		},
		{
			name: "gemini without key",
			mutate: func(c *Config) {
				c.LLM.Provider = ProviderGemini
				c.LLM.GeminiAPIKey = ""
			},
			errorMsg: "GEMINI_API_KEY is required",
		},
		{
			name: "unknown provider",
			mutate: func(c *Config) {
				c.LLM.Provider = "openai"
			},
			errorMsg: "unsupported LLM_PROVIDER",
		},
		{
			name: "s3 without bucket",
			mutate: func(c *Config) {
				c.LLM.GroqAPIKey = "gsk_test"
				c.Storage.Driver = StorageDriverS3
				c.Storage.S3.Bucket = ""
			},
			errorMsg: "S3_BUCKET is required",
		},
		{
			name: "unknown storage driver",
			mutate: func(c *Config) {
				c.LLM.GroqAPIKey = "gsk_test"
				c.Storage.Driver = "ftp"
			},
			errorMsg: "unsupported STORAGE_DRIVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				LLM:     LLMConfig{Provider: ProviderGroq},
				Storage: StorageConfig{Driver: StorageDriverLocal},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
