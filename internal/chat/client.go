package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidResponse = errors.New("invalid model response")

// FallbackReply is shown when the model cannot be reached. Served as a
// normal reply so the conversation never errors out on the user.
const FallbackReply = "No pude conectar. 📡 Intenta de nuevo en unos segundos."

const maxPromptPlaces = 15

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the generateContent endpoint of a Gemini-style model.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}
}

// Ask sends the user's message wrapped in the guide persona prompt and
// returns the model's reply.
func (c *Client) Ask(ctx context.Context, placeNames []string, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": buildPrompt(placeNames, message)}}},
		},
	}
	raw, err := c.doJSON(ctx, body)
	if err != nil {
		return "", err
	}
	return extractReply(raw)
}

// buildPrompt grounds the model in the app's catalog: the guide persona,
// the first places of the catalog, and the sponsor steer.
func buildPrompt(placeNames []string, message string) string {
	names := placeNames
	if len(names) > maxPromptPlaces {
		names = names[:maxPromptPlaces]
	}
	return fmt.Sprintf(`Eres el guía de la app "Ruta Correntina". Lugares disponibles: %s. Si preguntan por reparaciones o tecnología, recomienda TechFix Taller. Responde corto a: "%s"`,
		strings.Join(names, ", "), message)
}

func (c *Client) doJSON(ctx context.Context, body map[string]any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL
	if c.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model status %d: %s", resp.StatusCode, truncate(string(raw), 240))
	}
	return raw, nil
}

func extractReply(raw []byte) (string, error) {
	var payload struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", err
	}
	if payload.Error != nil {
		return "", errors.New(payload.Error.Message)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", ErrInvalidResponse
	}
	reply := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	if reply == "" {
		return "", ErrInvalidResponse
	}
	return reply, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
