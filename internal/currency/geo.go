package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/whiteboardproductions/site/go/internal/models"
)

var ErrMalformedResponse = errors.New("malformed geo response")

// Lookuper returns the currency hint for a client. clientIP may be empty when
// the caller is the client itself.
type Lookuper interface {
	Lookup(ctx context.Context, clientIP string) (models.Currency, error)
}

type GeoClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGeoClient(baseURL string, timeout time.Duration) *GeoClient {
	return &GeoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

func (c *GeoClient) Lookup(ctx context.Context, clientIP string) (models.Currency, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("geo lookup error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result models.GeoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	cur, ok := models.ParseCurrency(string(result.Currency))
	if !ok {
		return "", fmt.Errorf("%w: currency %q", ErrMalformedResponse, result.Currency)
	}
	return cur, nil
}
