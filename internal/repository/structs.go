package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrDuplicate      = errors.New("duplicate key")
)

type Package struct {
	ID             string              `db:"id"`
	OwnerID        string              `db:"owner_id"`
	TrackingNumber *string             `db:"tracking_number"`
	Description    string              `db:"description"`
	WeightKg       decimal.NullDecimal `db:"weight_kg"`
	Dimensions     string              `db:"dimensions"`
	DeclaredValue  decimal.Decimal     `db:"declared_value"`
	Photos         json.RawMessage     `db:"photos"`
	Status         string              `db:"status"`
	ReceivedAt     *time.Time          `db:"received_at"`
	StorageFee     decimal.Decimal     `db:"storage_fee"`
	CreatedAt      time.Time           `db:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at"`
}

// PackageFilter is the only way to narrow a package listing. Every field is
// optional; OwnerID empty means all owners (admin listings).
type PackageFilter struct {
	OwnerID  string
	Statuses []string
	Search   string
	Limit    int
	Offset   int
}

type Quote struct {
	ID                  string              `db:"id"`
	QuoteNumber         string              `db:"quote_number"`
	PackageID           string              `db:"package_id"`
	OwnerID             string              `db:"owner_id"`
	AmountHT            decimal.Decimal     `db:"amount_ht"`
	TaxRate             decimal.Decimal     `db:"tax_rate"`
	TaxAmount           decimal.Decimal     `db:"tax_amount"`
	AmountTTC           decimal.Decimal     `db:"amount_ttc"`
	BaseAmount          decimal.Decimal     `db:"base_amount"`
	PaymentStatus       string              `db:"payment_status"`
	CarrierID           *string             `db:"carrier_id"`
	CarrierName         *string             `db:"carrier_name"`
	CarrierPrice        decimal.NullDecimal `db:"carrier_price"`
	CarrierDeliveryTime *string             `db:"carrier_delivery_time"`
	PaymentSessionID    *string             `db:"payment_session_id"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at"`
}

type QuoteItem struct {
	ID        int64           `db:"id"`
	QuoteID   string          `db:"quote_id"`
	Kind      string          `db:"kind"`
	Label     string          `db:"label"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

type ReturnRequest struct {
	ID               string              `db:"id"`
	Reference        string              `db:"reference"`
	PackageID        string              `db:"package_id"`
	OwnerID          string              `db:"owner_id"`
	Type             string              `db:"type"`
	Reason           string              `db:"reason"`
	Urgency          string              `db:"urgency"`
	Description      string              `db:"description"`
	WeightKg         decimal.Decimal     `db:"weight_kg"`
	LengthCm         decimal.NullDecimal `db:"length_cm"`
	WidthCm          decimal.NullDecimal `db:"width_cm"`
	HeightCm         decimal.NullDecimal `db:"height_cm"`
	ShippingCost     decimal.Decimal     `db:"shipping_cost"`
	Status           string              `db:"status"`
	PaymentSessionID *string             `db:"payment_session_id"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

type TrackingEvent struct {
	ID          int64           `db:"id"`
	PackageID   string          `db:"package_id"`
	ExternalID  string          `db:"external_id"`
	EventType   string          `db:"event_type"`
	Description string          `db:"description"`
	Location    *string         `db:"location"`
	OccurredAt  time.Time       `db:"occurred_at"`
	RawPayload  json.RawMessage `db:"raw_payload"`
	CreatedAt   time.Time       `db:"created_at"`
}

type HistoryEntry struct {
	ID        int64     `db:"id"`
	PackageID string    `db:"package_id"`
	Status    string    `db:"status"`
	Note      string    `db:"note"`
	ChangedBy string    `db:"changed_by"`
	ChangedAt time.Time `db:"changed_at"`
}

type PaymentEvent struct {
	EventID     string    `db:"event_id"`
	Kind        string    `db:"kind"`
	ReferenceID string    `db:"reference_id"`
	ProcessedAt time.Time `db:"processed_at"`
}
