package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type TrackingRefresher interface {
	RefreshTracking(ctx context.Context, packageID string) (*storage.TrackingRefresh, error)
}

// TrackingUpdateHandler polls the carrier for the package named in a
// TrackingUpdateJob. Jobs for packages that are gone or no longer have a
// tracking number are dropped. Storage errors are returned for a retry; a
// carrier failure is not, the next scheduled refresh covers it.
func TrackingUpdateHandler(refresher TrackingRefresher, logger *zap.Logger) Handler {
	return func(ctx context.Context, _, value []byte) error {
		var job repository.TrackingUpdateJob
		if err := json.Unmarshal(value, &job); err != nil {
			return Permanent(fmt.Errorf("decode tracking job: %w", err))
		}
		if job.PackageID == "" {
			return Permanent(errors.New("tracking job without package id"))
		}

		res, err := refresher.RefreshTracking(ctx, job.PackageID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrValidation) {
				logger.Info("Dropping stale tracking job", zap.String("package_id", job.PackageID), zap.Error(err))
				return nil
			}
			return fmt.Errorf("refresh %s: %w", job.PackageID, err)
		}

		if !res.Success {
			logger.Warn("Carrier refresh failed",
				zap.String("package_id", job.PackageID),
				zap.String("tracking_number", job.TrackingNumber),
				zap.String("error", res.Error))
			return nil
		}
		logger.Debug("Tracking refreshed",
			zap.String("package_id", job.PackageID),
			zap.Int("new_events", res.NewEvents),
			zap.String("status", string(res.Status)))
		return nil
	}
}

// LogHandler writes every message to the log. It backs the topics nobody
// acts on yet, such as notifications and the audit trail.
func LogHandler(logger *zap.Logger) Handler {
	return func(_ context.Context, key, value []byte) error {
		logger.Info("Message received", zap.ByteString("key", key), zap.ByteString("value", value))
		return nil
	}
}
