package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a purchase record tied to one wholesaler. TotalAmount is always
// recomputed server-side before a save; client-supplied values are discarded.
type Invoice struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	WholesalerID  uuid.UUID       `gorm:"column:wholesaler_id;type:uuid;not null;index"`
	InvoiceNumber string          `gorm:"column:invoice_number;not null"`
	InvoiceDate   *time.Time      `gorm:"column:invoice_date"`
	GrossAmount   decimal.Decimal `gorm:"column:gross_amount;type:numeric(14,2);not null"`
	GSTPercentage decimal.Decimal `gorm:"column:gst_percentage;type:numeric(5,2);not null;default:18"`
	OtherCost     decimal.Decimal `gorm:"column:other_cost;type:numeric(14,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"column:discount;type:numeric(14,2);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2);not null"`
	Notes         *string         `gorm:"column:notes"`
	Wholesaler    *Wholesaler     `gorm:"foreignKey:WholesalerID;references:ID;constraint:-"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
