package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// OrderDTO is the API payload for a gateway payment order.
type OrderDTO struct {
	ID             uuid.UUID                `json:"id"`
	GatewayOrderID string                   `json:"gateway_order_id"`
	Amount         decimal.Decimal          `json:"amount"`
	Currency       string                   `json:"currency"`
	Status         enums.PaymentOrderStatus `json:"status"`
	Receipt        *string                  `json:"receipt,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// NewOrderDTO builds a DTO from the persisted model.
func NewOrderDTO(m *models.PaymentOrder) *OrderDTO {
	if m == nil {
		return nil
	}
	return &OrderDTO{
		ID:             m.ID,
		GatewayOrderID: m.GatewayOrderID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         m.Status,
		Receipt:        m.Receipt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// NewOrderDTOs maps a slice of models.
func NewOrderDTOs(rows []models.PaymentOrder) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewOrderDTO(&rows[i]))
	}
	return out
}
