package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

// AdvanceStatus applies a warehouse transition through the forward guard.
func (s *Storage) AdvanceStatus(ctx context.Context, actor, id, status string) (*Package, error) {
	to, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *repository.Package
	err = s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			return lookupErr("package", err)
		}

		from := Status(pkg.Status)
		if !CanTransition(from, to) {
			return conflictf("transition %s -> %s is not allowed", from, to)
		}
		if err := s.changeStatus(ctx, tx, pkg, to, actor, ""); err != nil {
			return err
		}
		if err := s.notifyStatus(ctx, tx, pkg); err != nil {
			return err
		}
		updated = pkg
		return s.audit(ctx, tx, actor, "package.status", "package", pkg.ID, map[string]string{
			"from": from.String(),
			"to":   to.String(),
		})
	})
	if err != nil {
		return nil, err
	}
	return s.withFee(updated), nil
}

// WeighIn records the warehouse measurements and stores the package.
func (s *Storage) WeighIn(ctx context.Context, actor, id string, weightKg decimal.Decimal, dimensions string) (*Package, error) {
	if !weightKg.IsPositive() {
		return nil, validationf("weight must be positive")
	}

	var updated *repository.Package
	err := s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			return lookupErr("package", err)
		}

		pkg.WeightKg = decimal.NullDecimal{Decimal: weightKg, Valid: true}
		if d := normalizeDimensions(dimensions); d != "" {
			pkg.Dimensions = d
		}

		switch from := Status(pkg.Status); {
		case from == StatusStored:
			pkg.UpdatedAt = s.now()
			if err := s.packageRepo.UpdateTx(ctx, tx, pkg); err != nil {
				return fmt.Errorf("failed to update package: %w", err)
			}
		case CanTransition(from, StatusStored):
			if err := s.changeStatus(ctx, tx, pkg, StatusStored, actor, "weigh-in"); err != nil {
				return err
			}
			if err := s.notifyStatus(ctx, tx, pkg); err != nil {
				return err
			}
		default:
			return conflictf("package %s is %s and cannot be weighed in", pkg.ID, from)
		}

		updated = pkg
		return s.audit(ctx, tx, actor, "package.weigh_in", "package", pkg.ID, map[string]string{
			"weight_kg":  weightKg.String(),
			"dimensions": pkg.Dimensions,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.withFee(updated), nil
}

// OverrideStatus sets any status, bypassing the forward guard. Every use is
// logged, audited and kept in the history with its reason.
func (s *Storage) OverrideStatus(ctx context.Context, actor, id, status, reason string) (*Package, error) {
	to, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validationf("override reason is required")
	}

	var updated *repository.Package
	err = s.inTx(ctx, func(tx db.Tx) error {
		pkg, err := s.packageRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			return lookupErr("package", err)
		}

		from := Status(pkg.Status)
		s.logger.Warn("package status override",
			zap.String("package_id", pkg.ID),
			zap.String("actor", actor),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
			zap.String("reason", reason),
		)

		if err := s.changeStatus(ctx, tx, pkg, to, actor, "override: "+reason); err != nil {
			return err
		}
		updated = pkg
		return s.audit(ctx, tx, actor, "package.override", "package", pkg.ID, map[string]string{
			"from":   from.String(),
			"to":     to.String(),
			"reason": reason,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.StatusOverridesTotal.Inc()
	return s.withFee(updated), nil
}

func (s *Storage) notifyStatus(ctx context.Context, tx db.Tx, pkg *repository.Package) error {
	return s.notify(ctx, tx, repository.NotificationJob{
		UserID:  pkg.OwnerID,
		Type:    "package_status",
		Title:   "Mise à jour de votre colis",
		Message: fmt.Sprintf("Votre colis est maintenant %s.", strings.ToLower(pkg.Status)),
		Link:    "/packages/" + pkg.ID,
	})
}
