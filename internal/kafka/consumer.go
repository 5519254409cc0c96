package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one message. The outbox marks a task done once it is
// on the topic, so the consumer owns redelivery: a failed message is retried
// in place up to maxHandlerAttempts times before its offset is committed.
// Errors wrapped with Permanent are committed at once.
type Handler func(ctx context.Context, key, value []byte) error

const maxHandlerAttempts = 5

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks a message that will never succeed, such as one that
// cannot be decoded.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

type ConsumerConfig struct {
	Brokers []string
	GroupID string
	Topic   string
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader     messageReader
	handler    Handler
	logger     *zap.Logger
	retryDelay time.Duration
}

func NewConsumer(cfg ConsumerConfig, handler Handler, logger *zap.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  3 * time.Second,
	})
	return &Consumer{
		reader:     r,
		handler:    handler,
		logger:     logger.With(zap.String("topic", cfg.Topic), zap.String("group_id", cfg.GroupID)),
		retryDelay: 5 * time.Second,
	}
}

// Run reads until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Consumer started")
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("Consumer stopped")
				return nil
			}
			c.logger.Error("Error reading message", zap.Error(err))
			select {
			case <-time.After(c.retryDelay):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		if !c.handle(ctx, m) {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit offset %d: %w", m.Offset, err)
		}
	}
}

// handle runs the handler until it succeeds, fails permanently or runs out
// of attempts. It returns false when ctx was cancelled while waiting, in
// which case the offset must not be committed.
func (c *Consumer) handle(ctx context.Context, m kafka.Message) bool {
	logger := c.logger.With(
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
		zap.ByteString("key", m.Key),
	)

	for attempt := 1; ; attempt++ {
		err := c.handler(ctx, m.Key, m.Value)
		if err == nil {
			return true
		}
		if isPermanent(err) {
			logger.Error("Dropping message", zap.Error(err))
			return true
		}
		if attempt >= maxHandlerAttempts {
			logger.Error("Dropping message after retries", zap.Int("attempts", attempt), zap.Error(err))
			return true
		}
		logger.Warn("Message handler failed, retrying", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-time.After(c.retryDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return false
		}
	}
}
