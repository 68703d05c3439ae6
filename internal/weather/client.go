package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Report is the one reading the app surfaces: current temperature in
// Celsius. Availability is best effort.
type Report struct {
	TemperatureC float64 `json:"temperature_c"`
	Available    bool    `json:"available"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches the current temperature for the given coordinates.
// Any failure degrades to an unavailable report; the caller never sees
// an error because weather is decoration, not a feature gate.
func (c *Client) Current(ctx context.Context, lat, lng float64) Report {
	endpoint := fmt.Sprintf("%s?latitude=%s&longitude=%s&current=temperature_2m",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%.4f", lat)),
		url.QueryEscape(fmt.Sprintf("%.4f", lng)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("weather request build failed: %v", err)
		return Report{}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("weather fetch failed: %v", err)
		return Report{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("weather fetch status %d", resp.StatusCode)
		return Report{}
	}

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("weather decode failed: %v", err)
		return Report{}
	}

	return Report{TemperatureC: payload.Current.Temperature, Available: true}
}
