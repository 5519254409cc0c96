// Package payment creates hosted checkout sessions on a Stripe-compatible
// API and verifies the webhooks that confirm them.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
)

const (
	KindQuote  = "quote"
	KindReturn = "return"
)

type SessionRequest struct {
	Kind        string
	ReferenceID string
	OwnerID     string
	Description string
	Amount      decimal.Decimal
	Currency    string
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Config struct {
	BaseURL    string
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

type Client struct {
	session *http.Client
	cfg     Config
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.stripe.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{session: &http.Client{Timeout: cfg.Timeout}, cfg: cfg}
}

type apiError struct {
	Code    int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("payment provider responded %d: %s", e.Code, e.Message)
}

// CreateSession opens a one-line checkout for req.Amount. The kind and
// reference travel as metadata and come back on the webhook.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	if c.cfg.SecretKey == "" {
		return Session{}, errors.New("payment provider is not configured")
	}
	if !req.Amount.IsPositive() {
		return Session{}, fmt.Errorf("invalid amount %s", req.Amount)
	}
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "eur"
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.cfg.SuccessURL)
	form.Set("cancel_url", c.cfg.CancelURL)
	form.Set("client_reference_id", req.ReferenceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(pricing.Cents(req.Amount), 10))
	form.Set("line_items[0][price_data][product_data][name]", req.Description)
	form.Set("metadata[kind]", req.Kind)
	form.Set("metadata[reference_id]", req.ReferenceID)
	form.Set("metadata[owner_id]", req.OwnerID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.SetBasicAuth(c.cfg.SecretKey, "")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Idempotency-Key", req.Kind+"-"+req.ReferenceID+"-"+pricing.RoundMoney(req.Amount).String())

	resp, err := c.session.Do(httpReq)
	if err != nil {
		return Session{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
			msg = body.Error.Message
		}
		return Session{}, &apiError{Code: resp.StatusCode, Message: msg}
	}

	var s Session
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return Session{}, fmt.Errorf("decode checkout session: %w", err)
	}
	if s.ID == "" {
		return Session{}, errors.New("checkout session without id")
	}
	return s, nil
}
