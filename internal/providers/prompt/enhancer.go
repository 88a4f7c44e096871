package prompt

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Enhancer rewrites a rough user prompt into a richer instruction and
// describes images for the remix flow. These collaborators serve the
// surrounding UI; the generation orchestrator never calls them.
type Enhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
	Analyze(ctx context.Context, imageDataURI string) (string, error)
}

// StaticEnhancer is the no-key fallback. It dresses prompts deterministically
// without any network calls.
type StaticEnhancer struct{}

func NewStaticEnhancer() *StaticEnhancer {
	return &StaticEnhancer{}
}

func (s *StaticEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}
	c := cases.Title(language.Und)
	subject := c.String(prompt)
	return fmt.Sprintf("%s, highly detailed, professional photography, dramatic lighting, rich color grading", subject), nil
}

func (s *StaticEnhancer) Analyze(ctx context.Context, imageDataURI string) (string, error) {
	if strings.TrimSpace(imageDataURI) == "" {
		return "", fmt.Errorf("image is required")
	}
	return "A reference photograph suitable for stylized regeneration.", nil
}

var _ Enhancer = (*StaticEnhancer)(nil)
