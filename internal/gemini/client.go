// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gemini calls the Google Generative Language API: text generation
// for paper summaries plus the model listing and probing that backs model
// resolution.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/litreview/internal/httputil"
	"github.com/pdiddy/litreview/pkg/types"
)

// apiBase is the Generative Language API endpoint. Package-level var for
// test substitution.
var apiBase = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Generative Language API with a fixed credential.
type Client struct {
	HTTPClient *http.Client

	// MaxRetries bounds retry attempts on rate-limit/overload responses.
	MaxRetries int

	apiKey string
}

// NewClient registers the credential. A blank key fails with
// types.ErrMissingAPIKey before any network work.
func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, types.ErrMissingAPIKey
	}
	return &Client{apiKey: apiKey}, nil
}

// ListModels enumerates the model identifiers the credential can access.
// The provider may deny listing; callers treat an error as "no information",
// not as a failed run.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/models?key=%s&pageSize=200", apiBase, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model listing returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding model listing: %w", err)
	}

	var models []string
	for _, m := range body.Models {
		// API names are of the form "models/gemini-1.5-flash".
		models = append(models, strings.TrimPrefix(m.Name, "models/"))
	}
	return models, nil
}

// GetModel probes a single model identifier for availability.
func (c *Client) GetModel(ctx context.Context, model string) error {
	url := fmt.Sprintf("%s/models/%s?key=%s", apiBase, model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("probing model %s: %w", model, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model %s returned HTTP %d", model, resp.StatusCode)
	}
	return nil
}

// generateRequest is the request body for the generateContent endpoint.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the response body from the generateContent endpoint.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText issues a single prompt to model and returns the raw text
// response. An empty string is a legitimate response, not an error.
// Rate-limit and overload responses are retried with backoff.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", apiBase, model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, c.httpClient(), req, c.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(body))
	}

	var gResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, p := range gResp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
