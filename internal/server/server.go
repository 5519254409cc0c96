//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type Service interface {
	CreatePackage(ctx context.Context, ownerID string, in storage.PackageInput) (*storage.Package, error)
	GetPackage(ctx context.Context, ownerID, id string) (*storage.Package, error)
	ListPackages(ctx context.Context, ownerID string, q storage.PackageQuery) ([]*storage.Package, error)
	ListAllPackages(ctx context.Context, q storage.PackageQuery) ([]*storage.Package, error)
	UpdatePackage(ctx context.Context, ownerID, id string, patch storage.PackagePatch) (*storage.Package, error)
	DeletePackage(ctx context.Context, ownerID, id string) error
	UploadPhotos(ctx context.Context, ownerID, id string, files []storage.PhotoUpload, captions []string) ([]storage.Photo, error)
	DeletePhoto(ctx context.Context, ownerID, id, url string) error
	SetTracking(ctx context.Context, ownerID, id, number string) (*storage.Package, error)
	GetPackageHistory(ctx context.Context, ownerID, id string) ([]storage.HistoryEntry, error)

	GetTracking(ctx context.Context, ownerID, packageID string) (*storage.TrackingView, error)
	RefreshOwnedTracking(ctx context.Context, ownerID, packageID string) (*storage.TrackingView, error)
	TrackingStatus(ctx context.Context, ownerID, packageID string) (*storage.TrackingView, error)

	GetOrCreateQuote(ctx context.Context, ownerID, packageID string) (*storage.Quote, error)
	GetQuoteByTracking(ctx context.Context, ownerID, trackingNumber string) (*storage.Quote, error)
	ListQuotes(ctx context.Context, ownerID string) ([]*storage.Quote, error)
	SelectCarrier(ctx context.Context, ownerID, quoteID, carrierID string) (*storage.Quote, error)
	StartQuotePayment(ctx context.Context, ownerID, quoteID string) (*storage.PaymentLink, error)
	ListCarriers() []carrier.Option

	EstimateReturnCost(weightKg decimal.Decimal, dims pricing.Dimensions, urgency string) (decimal.Decimal, error)
	CreateReturnRequest(ctx context.Context, ownerID string, in storage.ReturnInput) (*storage.ReturnRequest, error)
	ListReturnRequests(ctx context.Context, ownerID string) ([]*storage.ReturnRequest, error)
	StartReturnPayment(ctx context.Context, ownerID, id string) (*storage.PaymentLink, error)

	SettlePayment(ctx context.Context, ev storage.PaymentEvent) (bool, error)

	AdvanceStatus(ctx context.Context, actor, id, status string) (*storage.Package, error)
	OverrideStatus(ctx context.Context, actor, id, status, reason string) (*storage.Package, error)
	WeighIn(ctx context.Context, actor, id string, weightKg decimal.Decimal, dimensions string) (*storage.Package, error)
	RecalculateStorageFee(ctx context.Context, id string) (decimal.Decimal, error)
	ListAllReturns(ctx context.Context, page, limit int) ([]*storage.ReturnRequest, error)
	DeleteQuote(ctx context.Context, actor, id string) error
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Config struct {
	// JWTSecret verifies owner tokens (HS256, subject = owner id).
	JWTSecret string
	// WebhookSecret verifies payment provider webhooks.
	WebhookSecret string
}

type Server struct {
	service      Service
	userRepo     UserRepo
	cfg          Config
	logger       *zap.Logger
	timeNow      func() time.Time
	server       *http.Server
	AuditManager *AuditManager
}

func New(service Service, userRepo UserRepo, sink AuditSink, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		service:      service,
		userRepo:     userRepo,
		cfg:          cfg,
		logger:       logger,
		timeNow:      time.Now,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, sink, logger),
	}
}

// Run blocks until the listener stops. Shutdown is driven by the caller.
func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("HTTP server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("HTTP server shutdown completed")
	return nil
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.metricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/webhooks/payments", s.handlePaymentWebhook).Methods(http.MethodPost).Name("paymentWebhook")

	// Admin routes go first: the owner subrouter has no path prefix.
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(s.basicAuthMiddleware, s.auditLogMiddleware)

	admin.HandleFunc("/packages", s.handleAdminListPackages).Methods(http.MethodGet).Name("adminListPackages")
	admin.HandleFunc("/packages/{id}/status", s.handleAdvanceStatus).Methods(http.MethodPut).Name("advanceStatus")
	admin.HandleFunc("/packages/{id}/override", s.handleOverrideStatus).Methods(http.MethodPost).Name("overrideStatus")
	admin.HandleFunc("/packages/{id}/weigh-in", s.handleWeighIn).Methods(http.MethodPost).Name("weighIn")
	admin.HandleFunc("/packages/{id}/storage-fee", s.handleRecalculateFee).Methods(http.MethodPost).Name("recalculateFee")
	admin.HandleFunc("/returns", s.handleAdminListReturns).Methods(http.MethodGet).Name("adminListReturns")
	admin.HandleFunc("/quotes/{id}", s.handleDeleteQuote).Methods(http.MethodDelete).Name("deleteQuote")

	owner := r.NewRoute().Subrouter()
	owner.Use(s.ownerAuthMiddleware, s.auditLogMiddleware)

	owner.HandleFunc("/packages", s.handleCreatePackage).Methods(http.MethodPost).Name("createPackage")
	owner.HandleFunc("/packages", s.handleListPackages).Methods(http.MethodGet).Name("listPackages")
	owner.HandleFunc("/packages/{id}", s.handleGetPackage).Methods(http.MethodGet).Name("getPackage")
	owner.HandleFunc("/packages/{id}", s.handleUpdatePackage).Methods(http.MethodPatch).Name("updatePackage")
	owner.HandleFunc("/packages/{id}", s.handleDeletePackage).Methods(http.MethodDelete).Name("deletePackage")
	owner.HandleFunc("/packages/{id}/photos", s.handleUploadPhotos).Methods(http.MethodPost).Name("uploadPhotos")
	owner.HandleFunc("/packages/{id}/photos", s.handleDeletePhoto).Methods(http.MethodDelete).Name("deletePhoto")
	owner.HandleFunc("/packages/{id}/history", s.handlePackageHistory).Methods(http.MethodGet).Name("packageHistory")
	owner.HandleFunc("/packages/{id}/tracking", s.handleSetTracking).Methods(http.MethodPut).Name("setTracking")
	owner.HandleFunc("/packages/{id}/tracking", s.handleGetTracking).Methods(http.MethodGet).Name("getTracking")
	owner.HandleFunc("/packages/{id}/tracking/status", s.handleTrackingStatus).Methods(http.MethodGet).Name("trackingStatus")
	owner.HandleFunc("/packages/{id}/tracking/refresh", s.handleRefreshTracking).Methods(http.MethodPost).Name("refreshTracking")

	owner.HandleFunc("/packages/{id}/quote", s.handleGetOrCreateQuote).Methods(http.MethodPost).Name("getOrCreateQuote")
	owner.HandleFunc("/quotes", s.handleListQuotes).Methods(http.MethodGet).Name("listQuotes")
	owner.HandleFunc("/quotes/by-tracking/{number}", s.handleQuoteByTracking).Methods(http.MethodGet).Name("quoteByTracking")
	owner.HandleFunc("/quotes/{id}/carrier", s.handleSelectCarrier).Methods(http.MethodPut).Name("selectCarrier")
	owner.HandleFunc("/quotes/{id}/payment", s.handleStartQuotePayment).Methods(http.MethodPost).Name("startQuotePayment")
	owner.HandleFunc("/carriers", s.handleListCarriers).Methods(http.MethodGet).Name("listCarriers")

	owner.HandleFunc("/returns/estimate", s.handleEstimateReturn).Methods(http.MethodPost).Name("estimateReturn")
	owner.HandleFunc("/returns", s.handleCreateReturn).Methods(http.MethodPost).Name("createReturn")
	owner.HandleFunc("/returns", s.handleListReturns).Methods(http.MethodGet).Name("listReturns")
	owner.HandleFunc("/returns/{id}/payment", s.handleStartReturnPayment).Methods(http.MethodPost).Name("startReturnPayment")

	return r
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service's sentinel errors onto HTTP codes.
// Anything unrecognised is logged and hidden behind a 500.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrExternalService):
		s.logger.Warn("External service failure", zap.String("path", r.URL.Path), zap.Error(err))
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("Request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
