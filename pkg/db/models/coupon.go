package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// Coupon is a discount descriptor. The slug derives from the code with the
// shared slugification rule and is the public lookup key.
type Coupon struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string           `gorm:"column:code;not null"`
	Slug        string           `gorm:"column:slug;not null;uniqueIndex"`
	Type        enums.CouponType `gorm:"column:type;not null"`
	Value       decimal.Decimal  `gorm:"column:value;type:numeric(12,2);not null"`
	MinPurchase *decimal.Decimal `gorm:"column:min_purchase;type:numeric(12,2)"`
	MaxDiscount *decimal.Decimal `gorm:"column:max_discount;type:numeric(12,2)"`
	ExpiresAt   *time.Time       `gorm:"column:expires_at"`
	IsActive    bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
