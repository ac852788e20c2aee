package services

import (
	"context"
	"errors"
	"log"

	"github.com/sony/gobreaker/v2"

	"alfredoptarigan/interview-assistant/internal/config"
	"alfredoptarigan/interview-assistant/internal/models"
)

type breakerLLMService struct {
	next LLMService
	cb   *gobreaker.CircuitBreaker[string]
}

// NewCircuitBreakerLLMService fails fast with gobreaker.ErrOpenState once the
// provider's failure ratio crosses the configured threshold. It returns next
// unchanged when the breaker is disabled.
func NewCircuitBreakerLLMService(next LLMService, cfg config.CircuitBreakerConfig) LLMService {
	if !cfg.Enabled {
		return next
	}

	settings := gobreaker.Settings{
		Name:        "LLM-" + next.Model(),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("⚡ Circuit breaker %s: %s -> %s", name, from, to)
		},
		// A client hanging up says nothing about the provider.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &breakerLLMService{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (b *breakerLLMService) Model() string {
	return b.next.Model()
}

func (b *breakerLLMService) Complete(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.Complete(ctx, messages, temperature)
	})
}
