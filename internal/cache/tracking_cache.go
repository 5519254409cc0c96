package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

type TrackingEventLoader interface {
	Latest(ctx context.Context) ([]*repository.TrackingEvent, error)
}

// TrackingCache holds the newest known tracking event per package so that a
// status read never has to wait on the carrier.
type TrackingCache struct {
	mu     sync.RWMutex
	cache  map[string]*repository.TrackingEvent
	loader TrackingEventLoader
	logger *zap.Logger
}

func NewTrackingCache(loader TrackingEventLoader, logger *zap.Logger) *TrackingCache {
	return &TrackingCache{
		cache:  make(map[string]*repository.TrackingEvent),
		loader: loader,
		logger: logger,
	}
}

func (c *TrackingCache) LoadInitialData(ctx context.Context) error {
	c.logger.Info("Loading last known tracking events into cache...")
	events, err := c.loader.Latest(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		c.Set(e)
	}
	c.logger.Info("Tracking cache warmed", zap.Int("packages", c.Len()))
	return nil
}

func (c *TrackingCache) Get(packageID string) (*repository.TrackingEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	event, found := c.cache[packageID]
	if !found {
		return nil, false
	}
	eventCopy := *event
	return &eventCopy, true
}

// Set keeps the event only if it is newer than the cached one.
func (c *TrackingCache) Set(event *repository.TrackingEvent) {
	if event == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.cache[event.PackageID]; ok && cur.OccurredAt.After(event.OccurredAt) {
		return
	}
	eventCopy := *event
	c.cache[event.PackageID] = &eventCopy
	metrics.TrackingCacheItems.Set(float64(len(c.cache)))
}

func (c *TrackingCache) Delete(packageID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[packageID]; found {
		delete(c.cache, packageID)
		metrics.TrackingCacheItems.Set(float64(len(c.cache)))
	}
}

func (c *TrackingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
