package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"alfredoptarigan/interview-assistant/internal/models"
)

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (LLMService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: model,
	}, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}

// Complete implements LLMService.
func (g *geminiService) Complete(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error) {
	system, contents := toGeminiContents(messages)

	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		SystemInstruction: system,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	return resp.Text(), nil
}

// toGeminiContents moves system turns into a single system instruction and
// maps assistant turns onto the model role.
func toGeminiContents(messages []models.ChatMessage) (*genai.Content, []*genai.Content) {
	var (
		systemParts []*genai.Part
		contents    []*genai.Content
	)

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			systemParts = append(systemParts, genai.NewPartFromText(msg.Content))
		case models.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	if len(systemParts) == 0 {
		return nil, contents
	}
	return &genai.Content{Parts: systemParts}, contents
}
