package models

import (
	"time"

	"github.com/google/uuid"
)

// Wholesaler is a supplier referenced by garment variants and invoices.
type Wholesaler struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Area      string    `gorm:"column:area;not null"`
	City      string    `gorm:"column:city;not null"`
	Email     *string   `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Pincode   *string   `gorm:"column:pincode"`
	GSTNumber *string   `gorm:"column:gst_number"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
