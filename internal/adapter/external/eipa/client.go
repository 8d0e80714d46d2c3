package eipa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

const requestTimeout = 15 * time.Second

// Client reads charging point availability from the EIPA registry API. The
// registry is flaky during maintenance windows, so calls run behind a
// circuit breaker and the poller falls back to the last known state.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func NewClient(baseURL, apiKey string, log *zap.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        "eipa-registry",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
		breaker: gobreaker.NewCircuitBreaker(settings),
		log:     log,
	}
}

// FetchAvailability pulls the current reading for every charging point in
// the city.
func (c *Client) FetchAvailability(ctx context.Context) ([]ports.PointAvailability, error) {
	start := time.Now()
	defer func() {
		telemetry.RegistryLatency.Observe(time.Since(start).Seconds())
	}()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]ports.PointAvailability), nil
}

func (c *Client) fetch(ctx context.Context) ([]ports.PointAvailability, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/points/availability", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var payload struct {
		Points []ports.PointAvailability `json:"points"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}

	return payload.Points, nil
}
