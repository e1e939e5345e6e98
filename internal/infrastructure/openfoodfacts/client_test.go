package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nutrilog/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://world.openfoodfacts.net/api/v2", 5*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "https://world.openfoodfacts.net/api/v2", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.False(t, client.debug)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("https://example.com/", 0)

	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	// Trailing slash is trimmed so URL building stays clean.
	assert.Equal(t, "https://example.com", client.baseURL)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("https://example.com", 0)

	assert.False(t, client.debug)
	client.SetDebug(true)
	assert.True(t, client.debug)
}

func TestFetchByBarcode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/3017620422003.json", r.URL.Path)

		envelope := domain.ProductEnvelope{
			Code:   "3017620422003",
			Status: 1,
			Product: &domain.Product{
				Code:            "3017620422003",
				ProductName:     "Nutella",
				Brands:          "Ferrero",
				NutriscoreGrade: "e",
				Nutriments: map[string]any{
					"energy-kcal_100g": 539,
					"fat_100g":         30.9,
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelope)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	ctx := context.Background()

	product, err := client.FetchByBarcode(ctx, "3017620422003")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Nutella", product.ProductName)
	assert.Equal(t, "Ferrero", product.Brands)
	assert.Equal(t, "e", product.NutriscoreGrade)
	assert.Contains(t, product.Nutriments, "energy-kcal_100g")
}

func TestFetchByBarcode_UpstreamStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "not found status", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, 0)
			_, err := client.FetchByBarcode(context.Background(), "12345")

			var upstream *domain.UpstreamError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, tt.status, upstream.StatusCode)
			assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
		})
	}
}

func TestFetchByBarcode_NoProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// OFF answers 200 with no product record for unknown barcodes.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"000","status":0,"status_verbose":"product not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.FetchByBarcode(context.Background(), "000")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchByBarcode_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed up front so the dial fails

	client := NewClient(server.URL, 0)
	_, err := client.FetchByBarcode(context.Background(), "12345")

	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	var upstream *domain.UpstreamError
	assert.False(t, errors.As(err, &upstream), "transport errors carry no upstream status")
}

func TestFetchByBarcode_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"product":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.FetchByBarcode(context.Background(), "12345")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
