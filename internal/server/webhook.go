package server

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

const maxWebhookBytes = 1 << 20

// handlePaymentWebhook acknowledges every correctly signed event, including
// ones it ignores, so the provider stops redelivering them. Only storage
// failures ask for a retry.
func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Cannot read body")
		return
	}

	ev, err := payment.ParseWebhook(payload, r.Header.Get("Stripe-Signature"), s.cfg.WebhookSecret, s.timeNow())
	if err != nil {
		s.logger.Warn("Rejected payment webhook", zap.Error(err))
		if errors.Is(err, payment.ErrInvalidSignature) {
			respondError(w, http.StatusUnauthorized, "invalid signature")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger := s.logger.With(zap.String("event_id", ev.ID), zap.String("event_type", ev.Type))
	if ev.Type != payment.EventCheckoutCompleted || !ev.Paid {
		logger.Debug("Ignoring payment webhook")
		respondJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	applied, err := s.service.SettlePayment(r.Context(), storage.PaymentEvent{
		ID:          ev.ID,
		Kind:        ev.Kind,
		ReferenceID: ev.ReferenceID,
		SessionID:   ev.SessionID,
		AmountCents: ev.AmountTotal,
	})
	if err != nil {
		if errors.Is(err, storage.ErrValidation) {
			logger.Warn("Payment webhook without usable metadata", zap.Error(err))
			respondJSON(w, http.StatusOK, map[string]bool{"received": true})
			return
		}
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"received": true, "applied": applied})
}
