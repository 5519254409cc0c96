//go:generate mockgen -source ./collaborators.go -destination=./mocks/collaborators.go -package=mock_storage
package storage

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/tracking"
)

// ObjectStore holds photo files. Deletes are best-effort from the service's
// point of view.
type ObjectStore interface {
	UploadFile(path, contentType string, data []byte) (string, error)
	DeleteFile(path string) error
	DeleteFiles(paths []string) error
}

type TrackingProvider interface {
	FetchEvents(ctx context.Context, number string) tracking.Result
}

type PaymentProvider interface {
	CreateSession(ctx context.Context, req payment.SessionRequest) (payment.Session, error)
}

type CarrierCatalog interface {
	Get(id string) (carrier.Option, error)
	List() []carrier.Option
}

type TrackingCache interface {
	Get(packageID string) (*repository.TrackingEvent, bool)
	Set(event *repository.TrackingEvent)
	Delete(packageID string)
}
