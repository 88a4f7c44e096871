package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pictureme/internal/providers/genai"
)

const enhanceInstruction = "Rewrite the following image-generation prompt to be vivid and specific while keeping the user's intent. Reply with the improved prompt only, no commentary: "

const analyzeInstruction = "Describe this photo in one detailed paragraph suitable for use as an image-generation prompt. Focus on the subject, composition, lighting, and mood."

// GeminiEnhancer backs the enhance/analyze text services with the Gemini text
// model.
type GeminiEnhancer struct {
	client *genai.Client
}

func NewGeminiEnhancer(client *genai.Client) *GeminiEnhancer {
	return &GeminiEnhancer{client: client}
}

func (g *GeminiEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("prompt: gemini enhancer not configured")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}
	return g.client.GenerateText(ctx, enhanceInstruction+prompt, "")
}

func (g *GeminiEnhancer) Analyze(ctx context.Context, imageDataURI string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("prompt: gemini enhancer not configured")
	}
	if strings.TrimSpace(imageDataURI) == "" {
		return "", fmt.Errorf("image is required")
	}
	return g.client.GenerateText(ctx, analyzeInstruction, imageDataURI)
}

var _ Enhancer = (*GeminiEnhancer)(nil)
