package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the payment option chosen on the payment step. Both are simulated.
type PaymentMethod string

const (
	PaymentMethodQR   PaymentMethod = "qr"
	PaymentMethodCard PaymentMethod = "card"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodQR || m == PaymentMethodCard
}

// Contract is the record synthesized after a simulated payment confirmation.
type Contract struct {
	ID             string        `json:"id"`             // BH followed by 8 digits
	TransactionID  string        `json:"transaction_id"` // TX followed by 10 digits
	PackageID      string        `json:"package_id"`
	PackageName    string        `json:"package_name"`
	InsuranceType  InsuranceType `json:"insurance_type"`
	Price          int64         `json:"price"`
	FormattedPrice string        `json:"formatted_price"`
	Coverage       string        `json:"coverage"`
	Period         string        `json:"period"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	HolderName     string        `json:"holder_name"`
	CreatedAt      time.Time     `json:"created_at"`
}

// PurchaseStatus is the lifecycle status of a purchased policy.
type PurchaseStatus string

const (
	PurchaseStatusActive    PurchaseStatus = "ACTIVE"
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusExpired   PurchaseStatus = "EXPIRED"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
)

// PaymentStatus is the payment status of a purchase.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// ApplicantKind distinguishes the two purchase record shapes.
type ApplicantKind string

const (
	ApplicantKindStandard        ApplicantKind = "standard"
	ApplicantKindNaturalDisaster ApplicantKind = "natural_disaster"
)

// PurchaseRecord is the purchase row sent to the backend. Once created it is append-only.
type PurchaseRecord struct {
	ID             string         `json:"id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	ContractID     string         `json:"contract_id"`
	TransactionID  string         `json:"transaction_id"`
	PackageID      string         `json:"package_id"`
	PackageName    string         `json:"package_name"`
	InsuranceType  InsuranceType  `json:"insurance_type"`
	Price          int64          `json:"price"`
	FormattedPrice string         `json:"formatted_price,omitempty"`
	Coverage       string         `json:"coverage"`
	Period         string         `json:"period"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	ApplicantKind  ApplicantKind  `json:"applicant_kind"`
	Status         PurchaseStatus `json:"status"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`

	CustomerName     string `json:"customer_name"`
	CustomerIDNumber string `json:"customer_id_number"`
	CustomerPhone    string `json:"customer_phone"`
	CustomerEmail    string `json:"customer_email"`
	CustomerAddress  string `json:"customer_address"`

	VehiclePlate   string `json:"vehicle_plate,omitempty"`
	VehicleBrand   string `json:"vehicle_brand,omitempty"`
	VehicleModel   string `json:"vehicle_model,omitempty"`
	VehicleYear    int    `json:"vehicle_year,omitempty"`
	VehicleChassis string `json:"vehicle_chassis,omitempty"`
	VehicleEngine  string `json:"vehicle_engine,omitempty"`

	PropertyAddress string `json:"property_address,omitempty"`
	PropertyType    string `json:"property_type,omitempty"`
	PropertyValue   int64  `json:"property_value,omitempty"`

	ApplicationData *Application `json:"application_data,omitempty"`
	PurchasedAt     time.Time    `json:"purchased_at"`
}

// SyncStatus tracks delivery of a purchase record to the backend.
type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPending SyncStatus = "pending"
	SyncStatusFailed  SyncStatus = "failed"
)

// PurchaseLedgerEntry is the local copy of a purchase record and its delivery state.
// Contract ids are derived from a timestamp and may repeat, so rows are keyed by ID.
type PurchaseLedgerEntry struct {
	ID         uuid.UUID       `json:"id"`
	ContractID string          `json:"contract_id"`
	SessionID  string          `json:"-"`
	Record     *PurchaseRecord `json:"record"`
	SyncStatus SyncStatus      `json:"sync_status"`
	Attempts   int             `json:"attempts"`
	LastError  string          `json:"last_error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
