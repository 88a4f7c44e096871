package image

import (
	"context"
	"errors"

	"pictureme/internal/providers/genai"
)

// GeminiGenerator runs generations through the Gemini image model. Results
// come back inline, so the normalized URL is a data URI.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("image: gemini generator not configured")
	}
	if req.SourceImage == "" {
		return "", errors.New("image: gemini generator requires a source image")
	}
	return g.client.GenerateImage(ctx, req.Prompt, req.SourceImage)
}

var _ Generator = (*GeminiGenerator)(nil)
