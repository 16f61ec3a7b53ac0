package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// CouponDTO is the API payload for a discount coupon.
type CouponDTO struct {
	ID          uuid.UUID        `json:"id"`
	Code        string           `json:"code"`
	Slug        string           `json:"slug"`
	Type        enums.CouponType `json:"type"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase *decimal.Decimal `json:"min_purchase,omitempty"`
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewCouponDTO builds a DTO from the persisted model.
func NewCouponDTO(m *models.Coupon) *CouponDTO {
	if m == nil {
		return nil
	}
	return &CouponDTO{
		ID:          m.ID,
		Code:        m.Code,
		Slug:        m.Slug,
		Type:        m.Type,
		Value:       m.Value,
		MinPurchase: m.MinPurchase,
		MaxDiscount: m.MaxDiscount,
		ExpiresAt:   m.ExpiresAt,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// NewCouponDTOs maps a slice of models.
func NewCouponDTOs(rows []models.Coupon) []CouponDTO {
	out := make([]CouponDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCouponDTO(&rows[i]))
	}
	return out
}
