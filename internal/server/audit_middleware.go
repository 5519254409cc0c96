package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"
)

const maxAuditBodyBytes = 4 << 10

// packageRoutes lists the routes whose {id} is a package id.
var packageRoutes = map[string]bool{
	"updatePackage":    true,
	"deletePackage":    true,
	"uploadPhotos":     true,
	"deletePhoto":      true,
	"setTracking":      true,
	"refreshTracking":  true,
	"getOrCreateQuote": true,
	"advanceStatus":    true,
	"overrideStatus":   true,
	"weighIn":          true,
	"recalculateFee":   true,
}

// auditLogMiddleware records mutating requests only. Reads are left to the
// access metrics.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			Timestamp: s.timeNow(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Route:     routeName(r),
		}
		if packageRoutes[entry.Route] {
			entry.PackageID = mux.Vars(r)["id"]
		}

		entry.UserID = ownerID(r.Context())
		if entry.UserID == "" {
			entry.UserID = actor(r.Context())
		}

		skipRequestBody := strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data")
		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = truncateBody(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = truncateBody(wrw.GetBody())

		if entry.Route == "advanceStatus" || entry.Route == "overrideStatus" {
			var pkg struct {
				Status string `json:"status"`
			}
			if err := json.Unmarshal(wrw.GetBody(), &pkg); err == nil {
				entry.NewStatus = pkg.Status
			}
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unknown"
	}
	if name := route.GetName(); name != "" {
		return name
	}
	if tpl, err := route.GetPathTemplate(); err == nil {
		return tpl
	}
	return "unknown"
}

func truncateBody(b []byte) string {
	if len(b) <= maxAuditBodyBytes {
		return string(b)
	}
	cut := b[:maxAuditBodyBytes]
	for len(cut) > 0 && !utf8.Valid(cut) {
		cut = cut[:len(cut)-1]
	}
	return string(cut) + "..."
}
