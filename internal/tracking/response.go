package tracking

import (
	"encoding/json"
	"fmt"
	"time"
)

type trackInfoResponse struct {
	Code int `json:"code"`
	Data struct {
		Accepted []struct {
			Number    string `json:"number"`
			TrackInfo struct {
				Tracking struct {
					Providers []struct {
						Events []json.RawMessage `json:"events"`
					} `json:"providers"`
				} `json:"tracking"`
			} `json:"track_info"`
		} `json:"accepted"`
		Rejected []struct {
			Number string `json:"number"`
			Error  struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		} `json:"rejected"`
	} `json:"data"`
}

type providerEvent struct {
	ID          string `json:"id"`
	TimeISO     string `json:"time_iso"`
	TimeUTC     string `json:"time_utc"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Stage       string `json:"stage"`
	SubStatus   string `json:"sub_status"`
}

func (r trackInfoResponse) events(number string) ([]Event, error) {
	if r.Code != 0 {
		return nil, fmt.Errorf("tracking provider error code %d", r.Code)
	}
	for _, rej := range r.Data.Rejected {
		if rej.Number == number {
			return nil, fmt.Errorf("tracking number rejected: %s", rej.Error.Message)
		}
	}

	var out []Event
	for _, acc := range r.Data.Accepted {
		if acc.Number != number {
			continue
		}
		for _, p := range acc.TrackInfo.Tracking.Providers {
			for _, raw := range p.Events {
				var pe providerEvent
				if err := json.Unmarshal(raw, &pe); err != nil {
					return nil, fmt.Errorf("decode tracking event: %w", err)
				}
				e, ok := pe.toEvent(raw)
				if ok {
					out = append(out, e)
				}
			}
		}
	}
	return out, nil
}

// toEvent drops events without a parseable timestamp; they cannot be ordered.
func (pe providerEvent) toEvent(raw json.RawMessage) (Event, bool) {
	ts := pe.TimeUTC
	if ts == "" {
		ts = pe.TimeISO
	}
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return Event{}, false
	}

	stage := pe.Stage
	if stage == "" {
		stage = pe.SubStatus
	}
	return Event{
		ID:          pe.ID,
		Stage:       stage,
		Description: pe.Description,
		Location:    pe.Location,
		OccurredAt:  at.UTC(),
		Raw:         raw,
	}, true
}
