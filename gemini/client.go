// client.go - Client for the Google Generative Language API
//
// This is the single chokepoint for all outbound AI calls: one
// synchronous generateContent round trip per call, no retry, no
// streaming. The client holds no mutable state and is safe to use
// from concurrent requests.

package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2" // Outbound HTTP client
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	model          = "gemini-2.0-flash" // Fixed model identifier
)

var (
	// ErrNoAPIKey means GEMINI_API_KEY is unconfigured.
	ErrNoAPIKey = errors.New("GEMINI_API_KEY is not configured")

	// ErrUpstream wraps provider failures: a non-2xx response or a
	// payload without the expected completion text. Handlers log the
	// wrapped detail but never forward it to clients.
	ErrUpstream = errors.New("gemini api error")
)

// Request/response shapes for the generateContent endpoint.
type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct { // Client wraps the generative language endpoint
	http   *resty.Client
	apiKey string
}

// New returns a client against the production endpoint.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL allows tests to point the client at a fake upstream.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
	}
}

// Ask submits one composed prompt and returns the first completion text.
// The prompt body and auxiliary params (e.g. the joined symptom list)
// are concatenated into a single message, matching what the frontend
// expects back as responseText.
func (c *Client) Ask(ctx context.Context, prompt, params string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt + "\n" + params}}},
		},
	}

	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post("/models/" + model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.IsError() {
		msg := "unknown error"
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("%w: %s", ErrUpstream, msg)
	}

	// The expected completion text lives at candidates[0].content.parts[0].text.
	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 ||
		result.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("%w: invalid response format", ErrUpstream)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
