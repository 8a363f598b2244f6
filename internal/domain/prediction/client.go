package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// HTTPClient talks to the external inference service over its JSON API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPClient builds a client with an explicit timeout so a hung
// inference service surfaces as a PredictionError rather than a stuck
// request.
func NewHTTPClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "prediction_client").Logger(),
	}
}

// Predict submits a formatted request and returns the raw response body
// decoded as a generic map. Interpretation happens in the caller; the
// client only distinguishes success from failure.
func (c *HTTPClient) Predict(ctx context.Context, req Request) (map[string]interface{}, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &PredictionError{Op: "encode", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict", bytes.NewReader(body))
	if err != nil {
		return nil, &PredictionError{Op: "request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Warn().Err(err).Msg("prediction request failed")
		return nil, &PredictionError{Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn().Int("status", resp.StatusCode).Msg("prediction service rejected request")
		return nil, &PredictionError{Op: "submit", Status: resp.StatusCode}
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &PredictionError{Op: "decode", Err: err}
	}

	c.logger.Debug().
		Str("animal_type", req.AnimalType).
		Dur("latency", time.Since(start)).
		Msg("prediction received")
	return raw, nil
}

// Health checks the inference service's health endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &PredictionError{Op: "health", Err: err}
	}
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &PredictionError{Op: "health", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &PredictionError{Op: "health", Status: resp.StatusCode}
	}
	return nil
}

// SupportedAnimals returns the animal types the deployed model was trained
// on, as reported by the service itself.
func (c *HTTPClient) SupportedAnimals(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/animals", nil)
	if err != nil {
		return nil, &PredictionError{Op: "animals", Err: err}
	}
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &PredictionError{Op: "animals", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &PredictionError{Op: "animals", Status: resp.StatusCode}
	}

	var payload struct {
		Animals []string `json:"animals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &PredictionError{Op: "animals", Err: fmt.Errorf("decode animals: %w", err)}
	}
	return payload.Animals, nil
}
