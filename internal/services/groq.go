package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"alfredoptarigan/interview-assistant/internal/models"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// groqService talks to Groq's OpenAI-compatible chat completions endpoint.
type groqService struct {
	apiKey     string
	baseURL    string
	modelName  string
	httpClient *http.Client
}

func NewGroqService(apiKey, baseURL, model string, timeout time.Duration) LLMService {
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	return &groqService{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		modelName: model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatCompletionsRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float32              `json:"temperature"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (g *groqService) Model() string {
	return g.modelName
}

func (g *groqService) Complete(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("groq api key is empty")
	}

	data, err := json.Marshal(chatCompletionsRequest{
		Model:       g.modelName,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return "", fmt.Errorf("groq http %d: %v", resp.StatusCode, errBody)
	}

	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}

	return out.Choices[0].Message.Content, nil
}
