package image

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultAspectRatio is used when the caller does not specify one.
const DefaultAspectRatio = "1:1"

// GenerateRequest is the normalized request passed to any image provider.
// SourceImage is a data URI or URL; when empty the provider runs a
// text-to-image model, otherwise an image-to-image model.
type GenerateRequest struct {
	Prompt      string
	SourceImage string
	AspectRatio string
	RequestID   string
}

// Generator is the contract implemented by all image providers. The returned
// value is always a single URL string regardless of the provider's native
// output shape.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ErrEmptyOutput is returned when a provider responds without a usable image.
var ErrEmptyOutput = errors.New("image: provider returned no output")

// NormalizeOutput collapses a provider's raw JSON output into one URL string.
// Providers variously return a bare string, a list of strings, or an object
// with a url-like field.
func NormalizeOutput(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", ErrEmptyOutput
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", ErrEmptyOutput
		}
		return s, nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return "", ErrEmptyOutput
		}
		return NormalizeOutput(list[0])
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, key := range []string{"url", "image", "imageUrl", "image_url", "output"} {
			if v, ok := obj[key]; ok {
				return NormalizeOutput(v)
			}
		}
	}

	return "", fmt.Errorf("image: unrecognized output shape: %w", ErrEmptyOutput)
}
