package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pictureme/internal/providers/image"
)

// Model identifiers. Presence of a source image selects the image-to-image
// model; plain text prompts go to the faster text-to-image model.
const (
	textToImageModel  = "black-forest-labs/flux-schnell"
	imageToImageModel = "stability-ai/sdxl"
	sdxlVersion       = "39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"
)

// Policy holds the image-to-image tuning constants. They are configuration,
// not derived values.
type Policy struct {
	PromptStrength float64
	Refine         string
}

// DefaultPolicy mirrors the production tuning for SDXL edits.
var DefaultPolicy = Policy{
	PromptStrength: 0.75,
	Refine:         "expert_ensemble_refiner",
}

type Options struct {
	BaseURL      string
	APIToken     string
	HTTPClient   *http.Client
	Timeout      time.Duration
	PollInterval time.Duration
	Policy       *Policy
}

// Client drives the Replicate predictions API: create a prediction, then poll
// until it settles.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	token        string
	pollInterval time.Duration
	policy       Policy
}

func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://api.replicate.com/v1"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	policy := DefaultPolicy
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	return &Client{
		httpClient:   client,
		baseURL:      base,
		token:        strings.TrimSpace(opts.APIToken),
		pollInterval: interval,
		policy:       policy,
	}
}

type predictionRequest struct {
	Version string         `json:"version,omitempty"`
	Input   map[string]any `json:"input"`
}

type prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

// Generate runs one prediction and returns the normalized output URL.
func (c *Client) Generate(ctx context.Context, req image.GenerateRequest) (string, error) {
	if c == nil {
		return "", errors.New("replicate: client not configured")
	}
	if c.token == "" {
		return "", errors.New("replicate: API token is missing")
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", errors.New("replicate: prompt is required")
	}

	var endpoint string
	var payload predictionRequest
	if req.SourceImage != "" {
		endpoint = c.baseURL + "/predictions"
		payload = predictionRequest{
			Version: sdxlVersion,
			Input: map[string]any{
				"prompt":                 prompt,
				"image":                  req.SourceImage,
				"prompt_strength":        c.policy.PromptStrength,
				"refine":                 c.policy.Refine,
				"disable_safety_checker": true,
			},
		}
	} else {
		endpoint = c.baseURL + "/models/" + textToImageModel + "/predictions"
		aspect := req.AspectRatio
		if aspect == "" || aspect == "Auto" {
			aspect = image.DefaultAspectRatio
		}
		payload = predictionRequest{
			Input: map[string]any{
				"prompt":                 prompt,
				"aspect_ratio":           aspect,
				"output_format":          "png",
				"output_quality":         90,
				"disable_safety_checker": true,
			},
		}
	}

	pred, err := c.createPrediction(ctx, endpoint, payload)
	if err != nil {
		return "", err
	}
	pred, err = c.waitForPrediction(ctx, pred)
	if err != nil {
		return "", err
	}
	return image.NormalizeOutput(pred.Output)
}

func (c *Client) createPrediction(ctx context.Context, endpoint string, payload predictionRequest) (*prediction, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Prefer", "wait")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var pred prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("replicate: http %d", resp.StatusCode)
		}
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if pred.Error != "" {
			return nil, fmt.Errorf("replicate error: %s", pred.Error)
		}
		return nil, fmt.Errorf("replicate: http %d", resp.StatusCode)
	}
	return &pred, nil
}

func (c *Client) waitForPrediction(ctx context.Context, pred *prediction) (*prediction, error) {
	for {
		switch pred.Status {
		case "succeeded":
			return pred, nil
		case "failed", "canceled":
			if pred.Error != "" {
				return nil, fmt.Errorf("replicate error: %s", pred.Error)
			}
			return nil, fmt.Errorf("replicate: prediction %s %s", pred.ID, pred.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		next, err := c.getPrediction(ctx, pred)
		if err != nil {
			return nil, err
		}
		pred = next
	}
}

func (c *Client) getPrediction(ctx context.Context, pred *prediction) (*prediction, error) {
	endpoint := pred.URLs.Get
	if endpoint == "" {
		endpoint = c.baseURL + "/predictions/" + pred.ID
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out prediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if out.Error != "" {
			return nil, fmt.Errorf("replicate error: %s", out.Error)
		}
		return nil, fmt.Errorf("replicate: http %d", resp.StatusCode)
	}
	return &out, nil
}

var _ image.Generator = (*Client)(nil)
