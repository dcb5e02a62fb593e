package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseLedgerModel is the GORM-specific struct for the 'purchase_ledger' table.
// Record holds the purchase row exactly as it is sent to the backend. ContractID is
// timestamp-derived and not unique.
type PurchaseLedgerModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ContractID    string         `gorm:"type:varchar(32);not null;index"`
	TransactionID string         `gorm:"type:varchar(32);not null"`
	SessionID     string         `gorm:"type:varchar(64);not null;index"`
	UserID        string         `gorm:"type:varchar(64);index"`
	PackageID     string         `gorm:"type:varchar(64);not null"`
	Price         int64          `gorm:"not null"`
	Record        datatypes.JSON `gorm:"type:jsonb;not null"`
	SyncStatus    string         `gorm:"type:varchar(16);not null;default:'pending';index"`
	Attempts      int            `gorm:"not null;default:0"`
	LastError     string         `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseLedgerModel) TableName() string {
	return "purchase_ledger"
}
