// Package tracking fetches carrier events for a tracking number from a
// 17Track-compatible HTTP API.
package tracking

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	StageInfoReceived = "InfoReceived"
	StageNotFound     = "NotFound"
	StageDelivered    = "Delivered"
)

type Event struct {
	ID          string          `json:"id,omitempty"`
	Stage       string          `json:"stage"`
	Description string          `json:"description"`
	Location    string          `json:"location,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Raw         json.RawMessage `json:"-"`
}

// ExternalID is the dedup key of the event: the provider id when there is
// one, otherwise a hash of the timestamp and description.
func (e Event) ExternalID() string {
	if e.ID != "" {
		return e.ID
	}
	sum := sha256.Sum256([]byte(e.OccurredAt.UTC().Format(time.RFC3339) + "|" + e.Description))
	return hex.EncodeToString(sum[:16])
}

func (e Event) IsDelivered() bool {
	return strings.HasPrefix(e.Stage, StageDelivered)
}

// IsMovement reports whether the carrier physically handled the parcel, as
// opposed to having only received shipment information.
func (e Event) IsMovement() bool {
	return e.Stage != "" && !strings.HasPrefix(e.Stage, StageInfoReceived) && !strings.HasPrefix(e.Stage, StageNotFound)
}

// Result is never an error: a failed fetch is reported in Error and the
// caller keeps its last known state.
type Result struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Events  []Event `json:"events,omitempty"`
}

func failed(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("tracking provider responded %d: %s", e.Code, e.Body)
}

type Client struct {
	session *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// FetchEvents asks the provider once for the events of number. There is no
// retry; the next scheduled refresh is the retry.
func (c *Client) FetchEvents(ctx context.Context, number string) Result {
	if c.apiKey == "" {
		return failed(errors.New("tracking provider is not configured"))
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return failed(errors.New("empty tracking number"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal([]map[string]string{{"number": number}})
	if err != nil {
		return failed(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/track/v2.2/gettrackinfo", bytes.NewReader(body))
	if err != nil {
		return failed(err)
	}

	resp, err := c.do(req)
	if err != nil {
		return failed(err)
	}
	defer resp.Body.Close()

	var payload trackInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return failed(fmt.Errorf("decode tracking response: %w", err))
	}

	events, err := payload.events(number)
	if err != nil {
		return failed(err)
	}
	return Result{Success: true, Events: events}
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("17token", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}
