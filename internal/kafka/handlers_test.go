package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type refresherFunc func(ctx context.Context, packageID string) (*storage.TrackingRefresh, error)

func (f refresherFunc) RefreshTracking(ctx context.Context, packageID string) (*storage.TrackingRefresh, error) {
	return f(ctx, packageID)
}

func TestTrackingUpdateHandler(t *testing.T) {
	job := []byte(`{"package_id":"pkg-1","tracking_number":"LP00123456789FR"}`)

	tests := []struct {
		name      string
		value     []byte
		refresh   refresherFunc
		wantErr   string
		permanent bool
		wantCalls int
	}{
		{
			name:  "refreshes the package",
			value: job,
			refresh: func(_ context.Context, id string) (*storage.TrackingRefresh, error) {
				return &storage.TrackingRefresh{Success: true, NewEvents: 2, Status: storage.StatusShipped}, nil
			},
			wantCalls: 1,
		},
		{
			name:  "carrier failure is not redelivered",
			value: job,
			refresh: func(_ context.Context, id string) (*storage.TrackingRefresh, error) {
				return &storage.TrackingRefresh{Success: false, Error: "timeout"}, nil
			},
			wantCalls: 1,
		},
		{
			name:  "deleted package is dropped",
			value: job,
			refresh: func(_ context.Context, id string) (*storage.TrackingRefresh, error) {
				return nil, fmt.Errorf("%w: package %s", storage.ErrNotFound, id)
			},
			wantCalls: 1,
		},
		{
			name:  "storage failure is reported",
			value: job,
			refresh: func(_ context.Context, id string) (*storage.TrackingRefresh, error) {
				return nil, errors.New("pool closed")
			},
			wantErr:   "refresh pkg-1: pool closed",
			wantCalls: 1,
		},
		{
			name:      "malformed payload",
			value:     []byte(`{`),
			wantErr:   "decode tracking job",
			permanent: true,
		},
		{
			name:      "missing package id",
			value:     []byte(`{"tracking_number":"LP1"}`),
			wantErr:   "tracking job without package id",
			permanent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			refresher := refresherFunc(func(ctx context.Context, id string) (*storage.TrackingRefresh, error) {
				calls++
				assert.Equal(t, "pkg-1", id)
				return tt.refresh(ctx, id)
			})

			err := TrackingUpdateHandler(refresher, zap.NewNop())(context.Background(), []byte("pkg-1"), tt.value)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.permanent, isPermanent(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestLogHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	err := LogHandler(zap.New(core))(context.Background(), []byte("pkg-1"), []byte(`{"action":"advance_status"}`))

	require.NoError(t, err)
	entries := logs.FilterMessage("Message received").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pkg-1", entries[0].ContextMap()["key"])
}
