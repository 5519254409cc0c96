package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type returnMeasurements struct {
	WeightKg decimal.Decimal `json:"weight_kg"`
	LengthCm decimal.Decimal `json:"length_cm"`
	WidthCm  decimal.Decimal `json:"width_cm"`
	HeightCm decimal.Decimal `json:"height_cm"`
	Urgency  string          `json:"urgency"`
}

func (m returnMeasurements) dimensions() pricing.Dimensions {
	return pricing.Dimensions{LengthCm: m.LengthCm, WidthCm: m.WidthCm, HeightCm: m.HeightCm}
}

func (s *Server) handleEstimateReturn(w http.ResponseWriter, r *http.Request) {
	var req returnMeasurements
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cost, err := s.service.EstimateReturnCost(req.WeightKg, req.dimensions(), req.Urgency)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"shipping_cost": cost.StringFixed(2),
		"urgency":       req.Urgency,
	})
}

func (s *Server) handleCreateReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		returnMeasurements
		PackageID   string `json:"package_id"`
		Type        string `json:"type"`
		Reason      string `json:"reason"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PackageID == "" {
		respondError(w, http.StatusBadRequest, "Missing package_id")
		return
	}

	ret, err := s.service.CreateReturnRequest(r.Context(), ownerID(r.Context()), storage.ReturnInput{
		PackageID:   req.PackageID,
		Type:        req.Type,
		Reason:      req.Reason,
		Urgency:     req.Urgency,
		Description: req.Description,
		WeightKg:    req.WeightKg,
		Dimensions:  req.dimensions(),
	})
	if err != nil {
		if ret != nil && errors.Is(err, storage.ErrExternalService) {
			s.logger.Warn("Return saved without payment session", zap.String("return_id", ret.ID), zap.Error(err))
			respondJSON(w, http.StatusBadGateway, map[string]interface{}{
				"error":          err.Error(),
				"return_request": ret,
			})
			return
		}
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, ret)
}

func (s *Server) handleListReturns(w http.ResponseWriter, r *http.Request) {
	returns, err := s.service.ListReturnRequests(r.Context(), ownerID(r.Context()))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, returns)
}

func (s *Server) handleStartReturnPayment(w http.ResponseWriter, r *http.Request) {
	link, err := s.service.StartReturnPayment(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, link)
}
