package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	EventCheckoutCompleted = "checkout.session.completed"
	signatureTolerance     = 5 * time.Minute
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// Event is the part of a provider webhook the service acts on.
type Event struct {
	ID          string
	Type        string
	SessionID   string
	Kind        string
	ReferenceID string
	Paid        bool
	// AmountTotal is the charged amount in minor units.
	AmountTotal int64
	Currency    string
}

type webhookPayload struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			PaymentStatus string            `json:"payment_status"`
			AmountTotal   int64             `json:"amount_total"`
			Currency      string            `json:"currency"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseWebhook checks the "t=…,v1=…" signature header against secret and
// decodes the event. Signatures older than the tolerance are rejected.
func ParseWebhook(payload []byte, header, secret string, now time.Time) (Event, error) {
	if err := verifySignature(payload, header, secret, now); err != nil {
		return Event{}, err
	}

	var p webhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return Event{}, fmt.Errorf("decode webhook: %w", err)
	}
	if p.ID == "" {
		return Event{}, errors.New("webhook without event id")
	}

	obj := p.Data.Object
	return Event{
		ID:          p.ID,
		Type:        p.Type,
		SessionID:   obj.ID,
		Kind:        obj.Metadata["kind"],
		ReferenceID: obj.Metadata["reference_id"],
		Paid:        obj.PaymentStatus == "paid",
		AmountTotal: obj.AmountTotal,
		Currency:    obj.Currency,
	}, nil
}

func verifySignature(payload []byte, header, secret string, now time.Time) error {
	if secret == "" {
		return fmt.Errorf("%w: no secret configured", ErrInvalidSignature)
	}

	var (
		ts         int64
		signatures []string
	)
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
			}
			ts = parsed
		case "v1":
			signatures = append(signatures, v)
		}
	}
	if ts == 0 || len(signatures) == 0 {
		return fmt.Errorf("%w: malformed header", ErrInvalidSignature)
	}
	if d := now.Sub(time.Unix(ts, 0)); d > signatureTolerance || d < -signatureTolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	expected := Sign(payload, secret, ts)
	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// Sign computes the v1 signature of payload at timestamp ts.
func Sign(payload []byte, secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
