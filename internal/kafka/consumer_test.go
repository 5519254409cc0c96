package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []int64
	closed    bool
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func TestConsumer_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		messages: []kafka.Message{
			{Key: []byte("pkg-1"), Value: []byte(`{"package_id":"pkg-1"}`), Offset: 7},
			{Key: []byte("pkg-2"), Value: []byte(`{"package_id":"pkg-2"}`), Offset: 8},
		},
		cancel: cancel,
	}

	var handled []string
	c := &Consumer{
		reader: reader,
		handler: func(_ context.Context, key, _ []byte) error {
			handled = append(handled, string(key))
			return nil
		},
		logger: zap.NewNop(),
	}

	require.NoError(t, c.Run(ctx))

	assert.Equal(t, []string{"pkg-1", "pkg-2"}, handled)
	assert.Equal(t, []int64{7, 8}, reader.committed)
	assert.True(t, reader.closed)
}

func TestConsumer_Retries(t *testing.T) {
	message := kafka.Message{Key: []byte("pkg-1"), Value: []byte(`{"package_id":"pkg-1"}`), Offset: 7}

	tests := []struct {
		name          string
		failures      int
		err           error
		wantCalls     int
		wantCommitted []int64
	}{
		{
			name:          "transient failure is retried",
			failures:      2,
			err:           errors.New("pool closed"),
			wantCalls:     3,
			wantCommitted: []int64{7},
		},
		{
			name:          "gives up after the last attempt",
			failures:      100,
			err:           errors.New("pool closed"),
			wantCalls:     maxHandlerAttempts,
			wantCommitted: []int64{7},
		},
		{
			name:          "permanent failure is not retried",
			failures:      100,
			err:           Permanent(errors.New("decode tracking job")),
			wantCalls:     1,
			wantCommitted: []int64{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			reader := &fakeReader{messages: []kafka.Message{message}, cancel: cancel}

			calls := 0
			c := &Consumer{
				reader: reader,
				handler: func(context.Context, []byte, []byte) error {
					calls++
					if calls <= tt.failures {
						return tt.err
					}
					return nil
				},
				logger: zap.NewNop(),
			}

			require.NoError(t, c.Run(ctx))

			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantCommitted, reader.committed)
		})
	}
}

func TestConsumer_StopWhileRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &fakeReader{
		messages: []kafka.Message{{Key: []byte("pkg-1"), Offset: 7}},
		cancel:   cancel,
	}

	c := &Consumer{
		reader: reader,
		handler: func(context.Context, []byte, []byte) error {
			cancel()
			return errors.New("pool closed")
		},
		logger:     zap.NewNop(),
		retryDelay: time.Hour,
	}

	require.NoError(t, c.Run(ctx))

	assert.Empty(t, reader.committed, "an unfinished message is redelivered after restart")
	assert.True(t, reader.closed)
}

func TestPermanent(t *testing.T) {
	base := errors.New("bad payload")

	assert.Nil(t, Permanent(nil))
	assert.True(t, isPermanent(Permanent(base)))
	assert.True(t, isPermanent(fmt.Errorf("wrapped: %w", Permanent(base))))
	assert.ErrorIs(t, Permanent(base), base)
	assert.False(t, isPermanent(base))
}
