package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

const (
	maxUploadBytes = 32 << 20
	maxPhotoBytes  = 10 << 20
)

func (s *Server) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrackingNumber string              `json:"tracking_number"`
		Description    string              `json:"description"`
		WeightKg       decimal.NullDecimal `json:"weight_kg"`
		Dimensions     string              `json:"dimensions"`
		DeclaredValue  decimal.Decimal     `json:"declared_value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := s.service.CreatePackage(r.Context(), ownerID(r.Context()), storage.PackageInput{
		TrackingNumber: strings.TrimSpace(req.TrackingNumber),
		Description:    req.Description,
		WeightKg:       req.WeightKg,
		Dimensions:     req.Dimensions,
		DeclaredValue:  req.DeclaredValue,
	})
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, pkg)
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	q, err := parsePackageQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pkgs, err := s.service.ListPackages(r.Context(), ownerID(r.Context()), q)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkgs)
}

func (s *Server) handleGetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := s.service.GetPackage(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleUpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrackingNumber *string          `json:"tracking_number"`
		Description    *string          `json:"description"`
		Dimensions     *string          `json:"dimensions"`
		DeclaredValue  *decimal.Decimal `json:"declared_value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := s.service.UpdatePackage(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"], storage.PackagePatch{
		TrackingNumber: req.TrackingNumber,
		Description:    req.Description,
		Dimensions:     req.Dimensions,
		DeclaredValue:  req.DeclaredValue,
	})
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleDeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeletePackage(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Package deleted"})
}

// handleUploadPhotos takes multipart "photos" files with optional
// "captions" values in the same order.
func (s *Server) handleUploadPhotos(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["photos"]
	files := make([]storage.PhotoUpload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxPhotoBytes {
			respondError(w, http.StatusBadRequest, "Photo "+fh.Filename+" is too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "Cannot read "+fh.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respondError(w, http.StatusBadRequest, "Cannot read "+fh.Filename)
			return
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		if !strings.HasPrefix(contentType, "image/") {
			respondError(w, http.StatusBadRequest, fh.Filename+" is not an image")
			return
		}
		files = append(files, storage.PhotoUpload{Filename: fh.Filename, ContentType: contentType, Data: data})
	}

	photos, err := s.service.UploadPhotos(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"], files, r.MultipartForm.Value["captions"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, photos)
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil || req.URL == "" {
		respondError(w, http.StatusBadRequest, "Missing photo url")
		return
	}

	if err := s.service.DeletePhoto(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"], req.URL); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Photo deleted"})
}

func (s *Server) handlePackageHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.service.GetPackageHistory(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleSetTracking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrackingNumber string `json:"tracking_number"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := s.service.SetTracking(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"], req.TrackingNumber)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleGetTracking(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.GetTracking(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleTrackingStatus(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.TrackingStatus(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleRefreshTracking answers 200 even when the carrier is down; the
// view then carries refresh_error next to the last known state.
func (s *Server) handleRefreshTracking(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.RefreshOwnedTracking(r.Context(), ownerID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

var errBadPaging = errors.New("limit and offset must be non-negative integers")

func parsePackageQuery(r *http.Request) (storage.PackageQuery, error) {
	values := r.URL.Query()
	q := storage.PackageQuery{Search: strings.TrimSpace(values.Get("search"))}

	for _, raw := range values["status"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			st, err := storage.ParseStatus(part)
			if err != nil {
				return q, err
			}
			q.Statuses = append(q.Statuses, st)
		}
	}

	var err error
	if q.Limit, err = intParam(values.Get("limit")); err != nil {
		return q, errBadPaging
	}
	if q.Offset, err = intParam(values.Get("offset")); err != nil {
		return q, errBadPaging
	}
	return q, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errBadPaging
	}
	return n, nil
}
