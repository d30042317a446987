// Package vision reads scale photos through the Anthropic messages API.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"weighin/internal/domain"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	defaultModel   = "claude-sonnet-4-20250514"
	apiVersion     = "2023-06-01"
)

const scalePrompt = `You are analyzing a photo of a weight scale display. Extract the weight shown on the scale.

IMPORTANT INSTRUCTIONS:
1. Look for the main numeric display showing the weight
2. Identify the unit (lb, kg, or st for stones - convert stones to lb)
3. If you see multiple numbers, focus on the largest/primary display
4. Return ONLY a JSON object with no additional text

Response format:
{
  "weight": <number>,
  "unit": "lb" | "kg",
  "confidence": "high" | "medium" | "low",
  "rawText": "<exactly what you see on the display>"
}

If you cannot read the weight clearly, return:
{
  "weight": null,
  "unit": null,
  "confidence": "low",
  "rawText": "<what you can see>",
  "error": "<reason why you couldn't read it>"
}`

// Client calls the Anthropic messages API to read scale displays.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ domain.ScaleReader = (*Client)(nil)

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ReadScale sends the photo to the vision model and parses the reading out of
// its reply. An unreadable display comes back as Success=false, not an error.
func (c *Client) ReadScale(ctx context.Context, image []byte, mediaType string) (*domain.OCRResult, error) {
	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: 256,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{
					Type: "image",
					Source: &imageSource{
						Type:      "base64",
						MediaType: mediaType,
						Data:      base64.StdEncoding.EncodeToString(image),
					},
				},
				{Type: "text", Text: scalePrompt},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("vision: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("vision: %s", parsed.Error.Message)
		}
		return nil, fmt.Errorf("vision: unexpected status %d", resp.StatusCode)
	}

	text := ""
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	return parseReading(text)
}

// parseReading extracts the JSON object from the model's reply.
func parseReading(text string) (*domain.OCRResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return &domain.OCRResult{Success: false, Error: "could not parse response"}, nil
	}

	var reading struct {
		Weight     *float64    `json:"weight"`
		Unit       domain.Unit `json:"unit"`
		Confidence string      `json:"confidence"`
		RawText    string      `json:"rawText"`
		Error      string      `json:"error"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &reading); err != nil {
		return &domain.OCRResult{Success: false, Error: "could not parse response"}, nil
	}

	if reading.Weight == nil {
		msg := reading.Error
		if msg == "" {
			msg = "could not extract weight"
		}
		return &domain.OCRResult{
			Success:    false,
			Confidence: reading.Confidence,
			RawText:    reading.RawText,
			Error:      msg,
		}, nil
	}

	if !reading.Unit.Valid() {
		return &domain.OCRResult{Success: false, RawText: reading.RawText, Error: "unrecognised unit"}, nil
	}

	return &domain.OCRResult{
		Success:    true,
		Weight:     reading.Weight,
		Unit:       reading.Unit,
		Confidence: reading.Confidence,
		RawText:    reading.RawText,
	}, nil
}
