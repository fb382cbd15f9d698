// Package intasend is a thin client for the IntaSend hosted-checkout API.
// Only the pieces the payment service needs are modeled: creating a checkout
// session and verifying inbound webhook payloads.
package intasend

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type Config struct {
	BaseURL        string // e.g. https://sandbox.intasend.com
	PublishableKey string
	APIToken       string
	// Challenge is the shared secret IntaSend echoes back inside every
	// webhook payload. An event whose challenge does not match is rejected
	// before any state is touched.
	Challenge   string
	RedirectURL string
}

func ConfigFromEnv() Config {
	base := os.Getenv("INTASEND_BASE_URL")
	if base == "" {
		base = "https://sandbox.intasend.com"
	}
	return Config{
		BaseURL:        base,
		PublishableKey: os.Getenv("INTASEND_PUBLISHABLE_KEY"),
		APIToken:       os.Getenv("INTASEND_API_TOKEN"),
		Challenge:      os.Getenv("INTASEND_WEBHOOK_CHALLENGE"),
		RedirectURL:    os.Getenv("INTASEND_REDIRECT_URL"),
	}
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type CheckoutRequest struct {
	PublicKey   string `json:"public_key"`
	APIRef      string `json:"api_ref"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

type CheckoutResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SignedKey string `json:"signature"`
}

// WebhookEvent is the payload IntaSend posts on invoice state changes.
type WebhookEvent struct {
	InvoiceID    string `json:"invoice_id"`
	State        string `json:"state"` // PENDING | PROCESSING | COMPLETE | FAILED
	APIRef       string `json:"api_ref"`
	Value        string `json:"value"`
	Currency     string `json:"currency"`
	Challenge    string `json:"challenge"`
	FailedReason string `json:"failed_reason,omitempty"`
	Account      string `json:"account,omitempty"`
}

const (
	StatePending    = "PENDING"
	StateProcessing = "PROCESSING"
	StateComplete   = "COMPLETE"
	StateFailed     = "FAILED"
)

func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if req.PublicKey == "" {
		req.PublicKey = c.cfg.PublishableKey
	}
	if req.RedirectURL == "" {
		req.RedirectURL = c.cfg.RedirectURL
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/api/v1/checkout/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("intasend checkout: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("intasend checkout: status %d: %s", resp.StatusCode, truncate(raw, 500))
	}

	var out CheckoutResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("intasend checkout: decode response: %w", err)
	}
	if out.ID == "" || out.URL == "" {
		return nil, fmt.Errorf("intasend checkout: incomplete response: %s", truncate(raw, 500))
	}

	return &out, nil
}

// VerifyWebhook checks the payload challenge against the configured secret
// in constant time. A missing configured challenge fails closed.
func (c *Client) VerifyWebhook(ev WebhookEvent) bool {
	if c.cfg.Challenge == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(ev.Challenge), []byte(c.cfg.Challenge)) == 1
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
