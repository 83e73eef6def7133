// Package ai wraps the generative-AI collaborator that turns a natural-
// language itinerary query into a route description. The service layer
// depends on the Generator interface, not on the OpenAI client, so tests can
// inject a mock and the backend can be swapped without touching the pipeline.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jyvais/backend/internal/domain"
)

// Request carries everything the collaborator needs for one generation.
type Request struct {
	// Query is the localized natural-language itinerary query.
	Query string
	// SystemInstruction is the localized, transport-mode-aware system prompt.
	SystemInstruction string
	// Location optionally biases the answer towards the user's position.
	Location *domain.Coordinates
}

// Generator produces a free-text itinerary description for a request.
// An empty description is returned as-is; the caller decides whether that
// counts as a failure.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Client is the OpenAI-backed Generator.
type Client struct {
	api   openai.Client
	model openai.ChatModel
}

// NewClient constructs a Client for the given API key and model name.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("ai.NewClient: api key is required")
	}
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: openai.ChatModel(model),
	}, nil
}

// Generate sends a single chat completion and returns the first choice's text.
// There is no retry and no streaming; a request runs to completion or failure.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	system := req.SystemInstruction
	if req.Location != nil {
		system += fmt.Sprintf("\nThe user's current position is latitude %.4f, longitude %.4f.",
			req.Location.Latitude, req.Location.Longitude)
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(req.Query),
		},
	})
	if err != nil {
		return "", fmt.Errorf("ai.Client.Generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
