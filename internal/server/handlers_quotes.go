package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleGetOrCreateQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := s.service.GetOrCreateQuote(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (s *Server) handleQuoteByTracking(w http.ResponseWriter, r *http.Request) {
	quote, err := s.service.GetQuoteByTracking(r.Context(), ownerID(r.Context()), mux.Vars(r)["number"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.service.ListQuotes(r.Context(), ownerID(r.Context()))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quotes)
}

func (s *Server) handleSelectCarrier(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CarrierID string `json:"carrier_id"`
	}
	if err := decodeJSON(r, &req); err != nil || req.CarrierID == "" {
		respondError(w, http.StatusBadRequest, "Missing carrier_id")
		return
	}

	quote, err := s.service.SelectCarrier(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"], req.CarrierID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (s *Server) handleStartQuotePayment(w http.ResponseWriter, r *http.Request) {
	link, err := s.service.StartQuotePayment(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, link)
}

func (s *Server) handleListCarriers(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.service.ListCarriers())
}
