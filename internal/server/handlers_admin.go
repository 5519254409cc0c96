package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func (s *Server) handleAdminListPackages(w http.ResponseWriter, r *http.Request) {
	q, err := parsePackageQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pkgs, err := s.service.ListAllPackages(r.Context(), q)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkgs)
}

func (s *Server) handleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "Missing status")
		return
	}

	pkg, err := s.service.AdvanceStatus(r.Context(), actor(r.Context()), mux.Vars(r)["id"], req.Status)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleOverrideStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "Missing status")
		return
	}

	pkg, err := s.service.OverrideStatus(r.Context(), actor(r.Context()), mux.Vars(r)["id"], req.Status, req.Reason)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleWeighIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeightKg   decimal.Decimal `json:"weight_kg"`
		Dimensions string          `json:"dimensions"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := s.service.WeighIn(r.Context(), actor(r.Context()), mux.Vars(r)["id"], req.WeightKg, req.Dimensions)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleRecalculateFee(w http.ResponseWriter, r *http.Request) {
	fee, err := s.service.RecalculateStorageFee(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"storage_fee": fee.StringFixed(2)})
}

func (s *Server) handleAdminListReturns(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'page' parameter")
			return
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'limit' parameter")
			return
		}
	}

	returns, err := s.service.ListAllReturns(r.Context(), page, limit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, returns)
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteQuote(r.Context(), actor(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Quote deleted"})
}
