package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pictureme/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client is a lightweight facade over the Gemini generateContent API so that
// providers can focus on translating domain requests into API calls.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
	logger     *infra.Logger
}

func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	textModel := strings.TrimSpace(opts.TextModel)
	if textModel == "" {
		textModel = "gemini-1.5-flash"
	}
	imageModel := strings.TrimSpace(opts.ImageModel)
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image-preview"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    base,
		textModel:  textModel,
		imageModel: imageModel,
		httpClient: client,
		logger:     opts.Logger,
	}, nil
}

// TextModel returns the configured text model identifier.
func (c *Client) TextModel() string { return c.textModel }

// ImageModel returns the configured image model identifier.
func (c *Client) ImageModel() string { return c.imageModel }

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts,omitempty"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends a text-only prompt, optionally conditioned on an inline
// image, and returns the first candidate's text.
func (c *Client) GenerateText(ctx context.Context, prompt string, imageDataURI string) (string, error) {
	resp, err := c.generateContent(ctx, c.textModel, prompt, imageDataURI)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", errors.New("genai: empty text response")
}

// GenerateImage sends a prompt plus reference image to the image model and
// returns the generated image as a data URI.
func (c *Client) GenerateImage(ctx context.Context, prompt string, imageDataURI string) (string, error) {
	resp, err := c.generateContent(ctx, c.imageModel, prompt, imageDataURI)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, p.InlineData.Data), nil
			}
		}
	}
	return "", errors.New("genai: response contained no image data")
}

func (c *Client) generateContent(ctx context.Context, model, prompt, imageDataURI string) (*generateContentResponse, error) {
	if c == nil {
		return nil, errors.New("genai: client not configured")
	}
	if c.apiKey == "" {
		return nil, errors.New("genai: API key is missing")
	}

	parts := []part{{Text: prompt}}
	if imageDataURI != "" {
		mime, data, err := splitDataURI(imageDataURI)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part{InlineData: &inlineData{MimeType: mime, Data: data}})
	}
	payload := generateContentRequest{Contents: []content{{Role: "user", Parts: parts}}}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("genai: http %d", resp.StatusCode)
		}
		return nil, err
	}
	if out.Error != nil {
		if c.logger != nil {
			c.logger.Error().Int("code", out.Error.Code).Str("model", model).Msg("genai request failed")
		}
		return nil, fmt.Errorf("genai error: %s (code %d)", out.Error.Message, out.Error.Code)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if c.logger != nil {
			c.logger.Error().Int("status", resp.StatusCode).Str("model", model).Msg("genai request failed")
		}
		return nil, fmt.Errorf("genai: http %d", resp.StatusCode)
	}
	return &out, nil
}

// splitDataURI separates "data:image/png;base64,...." into mime type and raw
// base64 payload. Bare base64 strings are treated as PNG.
func splitDataURI(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "image/png", uri, nil
	}
	rest := strings.TrimPrefix(uri, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", "", errors.New("genai: unsupported data uri encoding")
	}
	mime := rest[:idx]
	if mime == "" {
		mime = "image/png"
	}
	return mime, rest[idx+len(";base64,"):], nil
}
