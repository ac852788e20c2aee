package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/interview-assistant/internal/config"
	"alfredoptarigan/interview-assistant/internal/models"
)

// LLMService sends an ordered conversation to a chat model and returns the
// text of its first reply.
type LLMService interface {
	Complete(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error)
	Model() string
}

// NewLLMService builds the provider selected by cfg.LLM.Provider, wrapped in a
// circuit breaker when one is enabled.
func NewLLMService(ctx context.Context, cfg *config.Config) (LLMService, error) {
	var (
		svc LLMService
		err error
	)

	switch cfg.LLM.Provider {
	case config.ProviderGroq:
		svc = NewGroqService(cfg.LLM.GroqAPIKey, cfg.LLM.GroqBaseURL, cfg.LLM.Model, cfg.LLM.Timeout)
	case config.ProviderGemini:
		svc, err = NewGeminiService(ctx, cfg.LLM.GeminiAPIKey, cfg.LLM.Model)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("🤖 Using %s model %s", cfg.LLM.Provider, svc.Model())

	return NewCircuitBreakerLLMService(svc, cfg.CircuitBreaker), nil
}
