package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Route      string    `json:"route"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	UserID     string    `json:"user_id,omitempty"`
	PackageID  string    `json:"package_id,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}

// AuditSink receives flushed batches. A failed write is logged by the
// manager and the batch is dropped.
type AuditSink interface {
	WriteAudit(ctx context.Context, batch []AuditLogEntry) error
}

// ProducerAuditSink publishes each entry to the audit topic, keyed by the
// package when there is one.
type ProducerAuditSink struct {
	producer kafka.Producer
}

func NewProducerAuditSink(producer kafka.Producer) *ProducerAuditSink {
	return &ProducerAuditSink{producer: producer}
}

func (s *ProducerAuditSink) WriteAudit(ctx context.Context, batch []AuditLogEntry) error {
	for _, entry := range batch {
		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal audit entry: %w", err)
		}

		key := entry.PackageID
		if key == "" {
			key = entry.UserID
		}
		if err := s.producer.SendMessage(ctx, repository.TopicAuditLogs, []byte(key), value); err != nil {
			return fmt.Errorf("publish audit entry: %w", err)
		}
	}
	return nil
}
