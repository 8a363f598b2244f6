package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestHTTPClient_Predict(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/predict" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"predicted_disease": "Mastitis",
			"confidence":        0.91,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, zerolog.Nop())
	raw, err := c.Predict(context.Background(), BuildRequest(Observation{AnimalType: "Cow"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["predicted_disease"] != "Mastitis" {
		t.Errorf("unexpected response: %v", raw)
	}
	if got.AnimalType != "Cow" || got.Breed != "Mixed" || got.AppetiteLoss != "no" {
		t.Errorf("wire payload wrong: %+v", got)
	}
}

func TestHTTPClient_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, zerolog.Nop())
	_, err := c.Predict(context.Background(), Request{})
	var pErr *PredictionError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PredictionError, got %v", err)
	}
	if pErr.Status != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", pErr.Status)
	}
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 20*time.Millisecond, zerolog.Nop())
	_, err := c.Predict(context.Background(), Request{})
	var pErr *PredictionError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PredictionError on timeout, got %v", err)
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, zerolog.Nop())
	_, err := c.Predict(context.Background(), Request{})
	var pErr *PredictionError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PredictionError, got %v", err)
	}
}

func TestHTTPClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, zerolog.Nop())
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPClient_SupportedAnimals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"animals": []string{"Cow", "Dog", "Goat"},
			"total":   3,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, zerolog.Nop())
	animals, err := c.SupportedAnimals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(animals) != 3 || animals[0] != "Cow" {
		t.Errorf("unexpected animals: %v", animals)
	}
}
