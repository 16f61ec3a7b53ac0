package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// PaymentOrder is the durable record of a gateway order. Earlier renditions
// of this system kept these in a process-wide map; they live in Postgres now.
type PaymentOrder struct {
	ID             uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID                `gorm:"column:user_id;type:uuid;not null;index"`
	GatewayOrderID string                   `gorm:"column:gateway_order_id;not null;uniqueIndex"`
	Amount         decimal.Decimal          `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency       string                   `gorm:"column:currency;not null"`
	Status         enums.PaymentOrderStatus `gorm:"column:status;not null;default:created"`
	Receipt        *string                  `gorm:"column:receipt"`
	CreatedAt      time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
