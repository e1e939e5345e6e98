package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nutrilog/backend/internal/domain"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single product fetch; a slow or unreachable
// upstream fails fast instead of hanging the dispatcher.
const DefaultTimeout = 12 * time.Second

// Client handles communication with the Open Food Facts v2 API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Open Food Facts client. A non-positive timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// OFF asks unauthenticated clients to stay under ~100 req/min.
	limiter := rate.NewLimiter(rate.Limit(1.5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose logging of upstream responses.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchByBarcode retrieves the product record for a barcode.
// A non-200 upstream status is surfaced as UpstreamError; a 200 response
// without a product record means the barcode is unknown (ErrNotFound).
func (c *Client) FetchByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/product/%s.json", c.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "nutrilog-backend/1.1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			body, _ := io.ReadAll(resp.Body)
			log.Printf("[OFF] barcode %s - status: %d, body: %s", barcode, resp.StatusCode, string(body))
		}
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	var envelope domain.ProductEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Product == nil {
		return nil, fmt.Errorf("%w: no product found for barcode %s", domain.ErrNotFound, barcode)
	}

	if c.debug {
		log.Printf("[OFF] barcode %s - product: %q, nutriments: %d keys",
			barcode, envelope.Product.ProductName, len(envelope.Product.Nutriments))
	}

	return envelope.Product, nil
}
