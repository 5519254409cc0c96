package tracking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "code": 0,
  "data": {
    "accepted": [{
      "number": "LP123",
      "track_info": {"tracking": {"providers": [{"events": [
        {"time_utc": "2025-02-03T10:00:00Z", "description": "Livré", "location": "Fort-de-France", "stage": "Delivered"},
        {"time_utc": "2025-02-01T08:00:00Z", "description": "En transit", "stage": "InTransit"},
        {"time_utc": "not a date", "description": "garbage"}
      ]}]}}
    }],
    "rejected": []
  }
}`

func TestClient_FetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/track/v2.2/gettrackinfo", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("17token"))
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	res := c.FetchEvents(context.Background(), "LP123")

	require.True(t, res.Success, res.Error)
	require.Len(t, res.Events, 2)
	assert.True(t, res.Events[0].IsDelivered())
	assert.Equal(t, "Fort-de-France", res.Events[0].Location)
	assert.True(t, res.Events[1].IsMovement())
	assert.False(t, res.Events[1].IsDelivered())
	assert.NotEmpty(t, res.Events[0].Raw)
}

func TestClient_FetchEvents_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		apiKey  string
		number  string
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			apiKey:  "key",
			number:  "LP123",
		},
		{
			name: "rejected number",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"code":0,"data":{"rejected":[{"number":"LP123","error":{"message":"invalid"}}]}}`))
			},
			apiKey: "key",
			number: "LP123",
		},
		{
			name: "slow provider",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(sampleResponse))
			},
			apiKey: "key",
			number: "LP123",
		},
		{name: "not configured", handler: func(http.ResponseWriter, *http.Request) {}, number: "LP123"},
		{name: "empty number", handler: func(http.ResponseWriter, *http.Request) {}, apiKey: "key", number: "  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewClient(srv.URL, tc.apiKey, 50*time.Millisecond)
			res := c.FetchEvents(context.Background(), tc.number)

			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
			assert.Empty(t, res.Events)
		})
	}
}

func TestEvent_ExternalID(t *testing.T) {
	at := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	a := Event{OccurredAt: at, Description: "En transit"}
	b := Event{OccurredAt: at, Description: "En transit"}
	c := Event{OccurredAt: at, Description: "Livré"}

	assert.Equal(t, a.ExternalID(), b.ExternalID())
	assert.NotEqual(t, a.ExternalID(), c.ExternalID())
	assert.Equal(t, "evt-9", Event{ID: "evt-9"}.ExternalID())
}
