package razorpay

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

	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/pkg/config"
)

var (
	errKeyRequired = errors.New("gateway key id and secret are required")
	errBaseURL     = errors.New("gateway base url is required")
)

// Order is the gateway's representation of a created payment order.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// OrderRequest describes the order to create. Amount is in currency units;
// the gateway wants the smallest denomination (paise for INR).
type OrderRequest struct {
	Amount   decimal.Decimal
	Currency string
	Receipt  string
}

// Client talks to the Razorpay orders API over HTTP basic auth.
type Client struct {
	baseURL  string
	keyID    string
	secret   string
	currency string
	http     *http.Client
}

// NewClient validates credentials and returns a gateway client.
func NewClient(cfg config.GatewayConfig) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errBaseURL
	}
	if strings.TrimSpace(cfg.KeyID) == "" || strings.TrimSpace(cfg.KeySecret) == "" {
		return nil, errKeyRequired
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	currency := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = "INR"
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		keyID:    cfg.KeyID,
		secret:   cfg.KeySecret,
		currency: currency,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Currency reports the default currency configured for the gateway.
func (c *Client) Currency() string {
	return c.currency
}

// CreateOrder creates an order on the gateway and returns its representation.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.currency
	}
	payload := map[string]any{
		"amount":   req.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency": currency,
		"receipt":  req.Receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding order payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building order request: %w", err)
	}
	httpReq.SetBasicAuth(c.keyID, c.secret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}
	if order.ID == "" {
		return nil, errors.New("gateway response missing order id")
	}
	return &order, nil
}
