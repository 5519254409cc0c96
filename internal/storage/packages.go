package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

const maxListLimit = 100

func (s *Storage) CreatePackage(ctx context.Context, ownerID string, in PackageInput) (*Package, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, validationf("description is required")
	}
	if err := validateAmounts(in.WeightKg, in.DeclaredValue); err != nil {
		return nil, err
	}

	now := s.now()
	pkg := &repository.Package{
		ID:             s.newID(),
		OwnerID:        ownerID,
		TrackingNumber: stringPtr(strings.TrimSpace(in.TrackingNumber)),
		Description:    description,
		WeightKg:       in.WeightKg,
		Dimensions:     normalizeDimensions(in.Dimensions),
		DeclaredValue:  in.DeclaredValue,
		Photos:         []byte("[]"),
		Status:         string(StatusAnnounced),
		StorageFee:     decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.inTx(ctx, func(tx db.Tx) error {
		if err := s.packageRepo.CreateTx(ctx, tx, pkg); err != nil {
			return fmt.Errorf("failed to add package: %w", err)
		}

		entry := &repository.HistoryEntry{
			PackageID: pkg.ID,
			Status:    pkg.Status,
			ChangedBy: ownerID,
			ChangedAt: now,
		}
		if err := s.historyRepo.CreateTx(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to add package history entry: %w", err)
		}

		if pkg.TrackingNumber == nil {
			return nil
		}
		if err := s.scheduleTracking(ctx, tx, pkg.ID, *pkg.TrackingNumber); err != nil {
			return err
		}
		return s.notify(ctx, tx, repository.NotificationJob{
			UserID:  ownerID,
			Type:    "package_announced",
			Title:   "Colis annoncé",
			Message: fmt.Sprintf("Votre colis %s a bien été annoncé.", *pkg.TrackingNumber),
			Link:    "/packages/" + pkg.ID,
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_package").Inc()
		return nil, err
	}

	metrics.PackagesCreatedTotal.Inc()
	s.logger.Info("package announced", zap.String("package_id", pkg.ID), zap.String("owner_id", ownerID))
	return toPackage(pkg), nil
}

func (s *Storage) GetPackage(ctx context.Context, ownerID, id string) (*Package, error) {
	pkg, err := s.packageRepo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, lookupErr("package", err)
	}
	return s.withFee(pkg), nil
}

func (s *Storage) ListPackages(ctx context.Context, ownerID string, q PackageQuery) ([]*Package, error) {
	return s.listPackages(ctx, ownerID, q)
}

// ListAllPackages is the warehouse view across owners.
func (s *Storage) ListAllPackages(ctx context.Context, q PackageQuery) ([]*Package, error) {
	return s.listPackages(ctx, "", q)
}

func (s *Storage) listPackages(ctx context.Context, ownerID string, q PackageQuery) ([]*Package, error) {
	if q.Limit < 0 || q.Offset < 0 {
		return nil, validationf("limit and offset must not be negative")
	}
	if q.Limit == 0 || q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}

	filter := repository.PackageFilter{
		OwnerID: ownerID,
		Search:  q.Search,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
	for _, st := range q.Statuses {
		filter.Statuses = append(filter.Statuses, st.String())
	}

	rows, err := s.packageRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	out := make([]*Package, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.withFee(row))
	}
	return out, nil
}

// UpdatePackage edits metadata. Only ownership is checked; the status does
// not restrict edits.
func (s *Storage) UpdatePackage(ctx context.Context, ownerID, id string, patch PackagePatch) (*Package, error) {
	var updated *repository.Package
	err := s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByOwnerTx(ctx, tx, ownerID, id)
		if err != nil {
			return lookupErr("package", err)
		}

		trackingChanged := false
		if patch.Description != nil {
			d := strings.TrimSpace(*patch.Description)
			if d == "" {
				return validationf("description is required")
			}
			pkg.Description = d
		}
		if patch.Dimensions != nil {
			pkg.Dimensions = normalizeDimensions(*patch.Dimensions)
		}
		if patch.DeclaredValue != nil {
			if patch.DeclaredValue.IsNegative() {
				return validationf("declared value must not be negative")
			}
			pkg.DeclaredValue = *patch.DeclaredValue
		}
		if patch.TrackingNumber != nil {
			number := stringPtr(strings.TrimSpace(*patch.TrackingNumber))
			trackingChanged = number != nil && (pkg.TrackingNumber == nil || *pkg.TrackingNumber != *number)
			pkg.TrackingNumber = number
		}
		pkg.UpdatedAt = s.now()

		if err := s.packageRepo.UpdateTx(ctx, tx, pkg); err != nil {
			return fmt.Errorf("failed to update package: %w", err)
		}
		if trackingChanged {
			if err := s.scheduleTracking(ctx, tx, pkg.ID, *pkg.TrackingNumber); err != nil {
				return err
			}
		}
		updated = pkg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.withFee(updated), nil
}

// DeletePackage refuses once the package is paid. Photo objects are removed
// best-effort; a storage failure never blocks the delete.
func (s *Storage) DeletePackage(ctx context.Context, ownerID, id string) error {
	err := s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByOwnerTx(ctx, tx, ownerID, id)
		if err != nil {
			return lookupErr("package", err)
		}
		if !Status(pkg.Status).Deletable() {
			return conflictf("package %s is %s and cannot be deleted", pkg.ID, pkg.Status)
		}

		s.removeObjects(photoPaths(decodePhotos(pkg.Photos)))

		if err := s.packageRepo.DeleteTx(ctx, tx, pkg.ID); err != nil {
			return fmt.Errorf("failed to delete package: %w", err)
		}
		return s.audit(ctx, tx, ownerID, "package.delete", "package", pkg.ID, map[string]string{
			"status": pkg.Status,
		})
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Delete(id)
	}
	return nil
}

// UploadPhotos stores the files and appends them to the package's photo
// list. captions[i] belongs to files[i]; missing captions stay empty.
func (s *Storage) UploadPhotos(ctx context.Context, ownerID, id string, files []PhotoUpload, captions []string) ([]Photo, error) {
	if len(files) == 0 {
		return nil, validationf("no files to upload")
	}
	if s.objects == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrExternalService)
	}
	if _, err := s.packageRepo.GetByOwner(ctx, ownerID, id); err != nil {
		return nil, lookupErr("package", err)
	}

	added := make([]Photo, 0, len(files))
	for i, f := range files {
		objectPath := fmt.Sprintf("packages/%s/%s%s", id, s.newID(), strings.ToLower(path.Ext(f.Filename)))
		url, err := s.objects.UploadFile(objectPath, f.ContentType, f.Data)
		if err != nil {
			s.removeObjects(photoPaths(added))
			metrics.OperationErrorsTotal.WithLabelValues("upload_photo").Inc()
			return nil, fmt.Errorf("%w: upload %s: %v", ErrExternalService, f.Filename, err)
		}

		photo := Photo{URL: url, Path: objectPath, UploadedAt: s.now()}
		if i < len(captions) {
			photo.Caption = strings.TrimSpace(captions[i])
		}
		added = append(added, photo)
	}

	err := s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByOwnerTx(ctx, tx, ownerID, id)
		if err != nil {
			return lookupErr("package", err)
		}

		photos := append(decodePhotos(pkg.Photos), added...)
		encoded, err := encodePhotos(photos)
		if err != nil {
			return fmt.Errorf("failed to encode photos: %w", err)
		}
		pkg.Photos = encoded
		pkg.UpdatedAt = s.now()

		if err := s.packageRepo.UpdateTx(ctx, tx, pkg); err != nil {
			return fmt.Errorf("failed to update package photos: %w", err)
		}
		return nil
	})
	if err != nil {
		s.removeObjects(photoPaths(added))
		return nil, err
	}
	return added, nil
}

// DeletePhoto drops the photo whose URL matches exactly, then removes the
// object best-effort.
func (s *Storage) DeletePhoto(ctx context.Context, ownerID, id, url string) error {
	var removed Photo
	err := s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByOwnerTx(ctx, tx, ownerID, id)
		if err != nil {
			return lookupErr("package", err)
		}

		photos := decodePhotos(pkg.Photos)
		idx := -1
		for i, p := range photos {
			if p.URL == url {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: photo", ErrNotFound)
		}
		removed = photos[idx]

		encoded, err := encodePhotos(append(photos[:idx], photos[idx+1:]...))
		if err != nil {
			return fmt.Errorf("failed to encode photos: %w", err)
		}
		pkg.Photos = encoded
		pkg.UpdatedAt = s.now()

		if err := s.packageRepo.UpdateTx(ctx, tx, pkg); err != nil {
			return fmt.Errorf("failed to update package photos: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed.Path != "" && s.objects != nil {
		if err := s.objects.DeleteFile(removed.Path); err != nil {
			s.logger.Warn("failed to delete photo object", zap.String("path", removed.Path), zap.Error(err))
		}
	}
	return nil
}

// SetTracking records the number and schedules a refresh; it does not call
// the carrier.
func (s *Storage) SetTracking(ctx context.Context, ownerID, id, number string) (*Package, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, validationf("tracking number is required")
	}

	var updated *repository.Package
	err := s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByOwnerTx(ctx, tx, ownerID, id)
		if err != nil {
			return lookupErr("package", err)
		}

		pkg.TrackingNumber = &number
		pkg.UpdatedAt = s.now()
		if err := s.packageRepo.UpdateTx(ctx, tx, pkg); err != nil {
			return fmt.Errorf("failed to update package: %w", err)
		}
		updated = pkg
		return s.scheduleTracking(ctx, tx, pkg.ID, number)
	})
	if err != nil {
		return nil, err
	}
	return s.withFee(updated), nil
}

func (s *Storage) GetPackageHistory(ctx context.Context, ownerID, id string) ([]HistoryEntry, error) {
	if _, err := s.packageRepo.GetByOwner(ctx, ownerID, id); err != nil {
		return nil, lookupErr("package", err)
	}

	rows, err := s.historyRepo.GetByPackageID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package history: %w", err)
	}

	out := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, toHistoryEntry(row))
	}
	return out, nil
}

// RecalculateStorageFee is the only path that persists a storage fee.
func (s *Storage) RecalculateStorageFee(ctx context.Context, id string) (decimal.Decimal, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, lookupErr("package", err)
	}

	now := s.now()
	fee := s.policy.Storage.Fee(pkg.ReceivedAt, Status(pkg.Status) == StatusStored, now)
	if err := s.packageRepo.SetStorageFee(ctx, pkg.ID, fee, now); err != nil {
		return decimal.Zero, fmt.Errorf("failed to save storage fee: %w", err)
	}
	return fee, nil
}

// RecalculateAllStorageFees refreshes the cached fee of every stored
// package and returns how many rows were written.
func (s *Storage) RecalculateAllStorageFees(ctx context.Context) (int, error) {
	rows, err := s.packageRepo.List(ctx, repository.PackageFilter{Statuses: []string{StatusStored.String()}})
	if err != nil {
		return 0, fmt.Errorf("failed to list stored packages: %w", err)
	}

	now := s.now()
	updated := 0
	for _, pkg := range rows {
		fee := s.policy.Storage.Fee(pkg.ReceivedAt, true, now)
		if fee.Equal(pkg.StorageFee) {
			continue
		}
		if err := s.packageRepo.SetStorageFee(ctx, pkg.ID, fee, now); err != nil {
			return updated, fmt.Errorf("failed to save storage fee for %s: %w", pkg.ID, err)
		}
		updated++
	}
	return updated, nil
}

func (s *Storage) removeObjects(paths []string) {
	if len(paths) == 0 || s.objects == nil {
		return
	}
	if err := s.objects.DeleteFiles(paths); err != nil {
		s.logger.Warn("failed to delete photo objects", zap.Strings("paths", paths), zap.Error(err))
	}
}

func photoPaths(photos []Photo) []string {
	paths := make([]string, 0, len(photos))
	for _, p := range photos {
		if p.Path != "" {
			paths = append(paths, p.Path)
		}
	}
	return paths
}

func validateAmounts(weight decimal.NullDecimal, declared decimal.Decimal) error {
	if weight.Valid && weight.Decimal.IsNegative() {
		return validationf("weight must not be negative")
	}
	if declared.IsNegative() {
		return validationf("declared value must not be negative")
	}
	return nil
}

// normalizeDimensions rewrites parsable "L x W x H" text to a canonical form
// and keeps anything else as typed.
func normalizeDimensions(text string) string {
	text = strings.TrimSpace(text)
	if dims, ok := pricing.ParseDimensions(text); ok {
		return dims.String()
	}
	return text
}
