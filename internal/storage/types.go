package storage

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

type Photo struct {
	URL        string    `json:"url"`
	Path       string    `json:"path"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Package struct {
	ID             string              `json:"id"`
	OwnerID        string              `json:"owner_id"`
	TrackingNumber string              `json:"tracking_number,omitempty"`
	Description    string              `json:"description"`
	WeightKg       decimal.NullDecimal `json:"weight_kg"`
	Dimensions     string              `json:"dimensions,omitempty"`
	DeclaredValue  decimal.Decimal     `json:"declared_value"`
	Photos         []Photo             `json:"photos"`
	Status         Status              `json:"status"`
	ReceivedAt     *time.Time          `json:"received_at,omitempty"`
	StorageFee     decimal.Decimal     `json:"storage_fee"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type PackageInput struct {
	TrackingNumber string
	Description    string
	WeightKg       decimal.NullDecimal
	Dimensions     string
	DeclaredValue  decimal.Decimal
}

// PackagePatch carries only the fields the owner wants to change.
type PackagePatch struct {
	TrackingNumber *string
	Description    *string
	Dimensions     *string
	DeclaredValue  *decimal.Decimal
}

type PackageQuery struct {
	Statuses []Status
	Search   string
	Limit    int
	Offset   int
}

type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type HistoryEntry struct {
	Status    Status    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ChangedBy string    `json:"changed_by,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

const (
	ItemHandling = "handling"
	ItemCarrier  = "carrier"
)

type QuoteItem struct {
	Kind   string          `json:"kind"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type CarrierChoice struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime string          `json:"delivery_time"`
}

type Quote struct {
	ID            string          `json:"id"`
	QuoteNumber   string          `json:"quote_number"`
	PackageID     string          `json:"package_id"`
	OwnerID       string          `json:"owner_id"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	AmountHT      decimal.Decimal `json:"amount_ht"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	AmountTTC     decimal.Decimal `json:"amount_ttc"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Carrier       *CarrierChoice  `json:"carrier,omitempty"`
	Items         []QuoteItem     `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentLink struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type ReturnType string

const (
	ReturnRefund   ReturnType = "remboursement"
	ReturnExchange ReturnType = "echange"
	ReturnRepair   ReturnType = "reparation"
)

type ReturnReason string

const (
	ReasonDefective      ReturnReason = "defectueux"
	ReasonNotAsDescribed ReturnReason = "non_conforme"
	ReasonDamaged        ReturnReason = "endommage"
	ReasonWrongOrder     ReturnReason = "erreur_commande"
	ReasonOther          ReturnReason = "autre"
)

type ReturnStatus string

const (
	ReturnPendingPayment ReturnStatus = "pending-payment"
	ReturnPending        ReturnStatus = "pending"
	ReturnApproved       ReturnStatus = "approved"
	ReturnRejected       ReturnStatus = "rejected"
	ReturnCompleted      ReturnStatus = "completed"
)

type ReturnInput struct {
	PackageID   string
	Type        string
	Reason      string
	Urgency     string
	Description string
	WeightKg    decimal.Decimal
	Dimensions  pricing.Dimensions
}

type ReturnRequest struct {
	ID           string             `json:"id"`
	Reference    string             `json:"reference"`
	PackageID    string             `json:"package_id"`
	OwnerID      string             `json:"owner_id"`
	Type         ReturnType         `json:"type"`
	Reason       ReturnReason       `json:"reason"`
	Urgency      pricing.Urgency    `json:"urgency"`
	Description  string             `json:"description,omitempty"`
	WeightKg     decimal.Decimal    `json:"weight_kg"`
	Dimensions   pricing.Dimensions `json:"dimensions"`
	ShippingCost decimal.Decimal    `json:"shipping_cost"`
	Status       ReturnStatus       `json:"status"`
	Payment      *PaymentLink       `json:"payment,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

type TrackingEvent struct {
	ExternalID  string          `json:"external_id"`
	EventType   string          `json:"event_type"`
	Description string          `json:"description"`
	Location    string          `json:"location,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	RawPayload  json.RawMessage `json:"raw_payload,omitempty"`
}

// TrackingView is what a package's tracking page shows: the last known
// event, the ledger, and the outcome of a refresh when one was attempted.
type TrackingView struct {
	PackageID      string          `json:"package_id"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	Status         Status          `json:"status"`
	LastEvent      *TrackingEvent  `json:"last_event,omitempty"`
	Events         []TrackingEvent `json:"events,omitempty"`
	RefreshError   string          `json:"refresh_error,omitempty"`
}

type TrackingRefresh struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	NewEvents int    `json:"new_events"`
	Status    Status `json:"status"`
}

// PaymentEvent is a confirmed payment reported by the provider.
type PaymentEvent struct {
	ID          string
	Kind        string
	ReferenceID string
	SessionID   string
	// AmountCents is what the provider charged, in minor units.
	AmountCents int64
}

func toPackage(p *repository.Package) *Package {
	pkg := &Package{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Description:   p.Description,
		WeightKg:      p.WeightKg,
		Dimensions:    p.Dimensions,
		DeclaredValue: p.DeclaredValue,
		Photos:        decodePhotos(p.Photos),
		Status:        Status(p.Status),
		ReceivedAt:    p.ReceivedAt,
		StorageFee:    p.StorageFee,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.TrackingNumber != nil {
		pkg.TrackingNumber = *p.TrackingNumber
	}
	return pkg
}

func decodePhotos(raw json.RawMessage) []Photo {
	photos := []Photo{}
	if len(raw) == 0 {
		return photos
	}
	if err := json.Unmarshal(raw, &photos); err != nil {
		return []Photo{}
	}
	return photos
}

func encodePhotos(photos []Photo) (json.RawMessage, error) {
	if photos == nil {
		photos = []Photo{}
	}
	return json.Marshal(photos)
}

func toHistoryEntry(h *repository.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		Status:    Status(h.Status),
		Note:      h.Note,
		ChangedBy: h.ChangedBy,
		ChangedAt: h.ChangedAt,
	}
}

func toQuote(q *repository.Quote, items []*repository.QuoteItem) *Quote {
	out := &Quote{
		ID:            q.ID,
		QuoteNumber:   q.QuoteNumber,
		PackageID:     q.PackageID,
		OwnerID:       q.OwnerID,
		BaseAmount:    q.BaseAmount,
		AmountHT:      q.AmountHT,
		TaxRate:       q.TaxRate,
		TaxAmount:     q.TaxAmount,
		AmountTTC:     q.AmountTTC,
		PaymentStatus: PaymentStatus(q.PaymentStatus),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if q.CarrierID != nil {
		c := &CarrierChoice{ID: *q.CarrierID, Price: q.CarrierPrice.Decimal}
		if q.CarrierName != nil {
			c.Name = *q.CarrierName
		}
		if q.CarrierDeliveryTime != nil {
			c.DeliveryTime = *q.CarrierDeliveryTime
		}
		out.Carrier = c
	}
	for _, it := range items {
		out.Items = append(out.Items, QuoteItem{Kind: it.Kind, Label: it.Label, Amount: it.Amount})
	}
	return out
}

func toReturnRequest(r *repository.ReturnRequest) *ReturnRequest {
	return &ReturnRequest{
		ID:          r.ID,
		Reference:   r.Reference,
		PackageID:   r.PackageID,
		OwnerID:     r.OwnerID,
		Type:        ReturnType(r.Type),
		Reason:      ReturnReason(r.Reason),
		Urgency:     pricing.Urgency(r.Urgency),
		Description: r.Description,
		WeightKg:    r.WeightKg,
		Dimensions: pricing.Dimensions{
			LengthCm: r.LengthCm.Decimal,
			WidthCm:  r.WidthCm.Decimal,
			HeightCm: r.HeightCm.Decimal,
		},
		ShippingCost: r.ShippingCost,
		Status:       ReturnStatus(r.Status),
		CreatedAt:    r.CreatedAt,
	}
}

func toTrackingEvent(e *repository.TrackingEvent) TrackingEvent {
	out := TrackingEvent{
		ExternalID:  e.ExternalID,
		EventType:   e.EventType,
		Description: e.Description,
		OccurredAt:  e.OccurredAt,
		RawPayload:  e.RawPayload,
	}
	if e.Location != nil {
		out.Location = *e.Location
	}
	return out
}

func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	if d.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
