package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash-preview-09-2025"

// Client is a ChatModel backed by the Gemini API.
type Client struct {
	Model  string
	models *genai.Models
}

// Config holds Gemini API settings. BaseURL is empty for the public endpoint.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New creates a Gemini client. An empty APIKey is passed through unchanged; the
// SDK decides whether it can fall back to its own environment lookup.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{Model: cfg.Model, models: client.Models}, nil
}

// Ask sends userPrompt with an optional system instruction and returns the reply text.
// SDK errors are returned as is so callers render the API message verbatim.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	result, err := c.models.GenerateContent(ctx, c.Model, genai.Text(userPrompt), generateConfig(systemPrompt))
	if err != nil {
		return "", err
	}
	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

func generateConfig(systemPrompt string) *genai.GenerateContentConfig {
	if systemPrompt == "" {
		return nil
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
}
