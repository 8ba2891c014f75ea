package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/pkg/config"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
)

const (
	estimatePath               = "/v1/estimates"
	defaultTimeout             = 5 * time.Second
	responseBodyReadLimit int64 = 1024
)

var (
	errBaseURLRequired = errors.New("delivery provider base URL is required")
	errAPIKeyRequired  = errors.New("delivery provider API key is required")
)

// Client calls the external delivery provider's fee-estimate endpoint. It is
// the network-backed half of delivery pricing; tier math covers the rest.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	provider   string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds a provider client from configuration.
func NewClient(cfg config.DeliveryProviderConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(strings.TrimSuffix(cfg.BaseURL, "/"))
	if baseURL == "" {
		return nil, errBaseURLRequired
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		provider:   strings.TrimSpace(cfg.Provider),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client, nil
}

type estimateRequest struct {
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
}

type estimateResponse struct {
	Fee      float64 `json:"fee"`
	Distance float64 `json:"distance"`
}

// GetEstimate requests a delivery fee estimate for the given addresses. The
// provider returns the fee in currency units; it is converted to cents here
// so nothing downstream handles floats.
func (c *Client) GetEstimate(ctx context.Context, req pricing.EstimateRequest) (*pricing.Estimate, error) {
	pickup := strings.TrimSpace(req.PickupAddress)
	dropoff := strings.TrimSpace(req.DeliveryAddress)
	if pickup == "" || dropoff == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pickup and delivery addresses are required")
	}

	payload, err := json.Marshal(estimateRequest{PickupAddress: pickup, DeliveryAddress: dropoff})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "encode estimate request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+estimatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build estimate request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call delivery provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("delivery provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var parsed estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode estimate response")
	}
	if parsed.Fee < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "delivery provider returned a negative fee")
	}

	return &pricing.Estimate{
		FeeCents: pricing.Cents(parsed.Fee),
		Distance: parsed.Distance,
		Provider: c.provider,
	}, nil
}
