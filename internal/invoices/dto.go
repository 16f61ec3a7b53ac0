package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// WholesalerRef is the expanded supplier summary on invoice reads. A deleted
// supplier renders the whole ref as null.
type WholesalerRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	City string    `json:"city"`
}

// InvoiceDTO is the API payload for a purchase invoice.
type InvoiceDTO struct {
	ID            uuid.UUID       `json:"id"`
	WholesalerID  uuid.UUID       `json:"wholesaler_id"`
	Wholesaler    *WholesalerRef  `json:"wholesaler"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   *time.Time      `json:"invoice_date,omitempty"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	GSTPercentage decimal.Decimal `json:"gst_percentage"`
	OtherCost     decimal.Decimal `json:"other_cost"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewInvoiceDTO builds a DTO from the persisted model.
func NewInvoiceDTO(m *models.Invoice) *InvoiceDTO {
	if m == nil {
		return nil
	}
	dto := &InvoiceDTO{
		ID:            m.ID,
		WholesalerID:  m.WholesalerID,
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		GrossAmount:   m.GrossAmount,
		GSTPercentage: m.GSTPercentage,
		OtherCost:     m.OtherCost,
		Discount:      m.Discount,
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Wholesaler != nil {
		dto.Wholesaler = &WholesalerRef{
			ID:   m.Wholesaler.ID,
			Name: m.Wholesaler.Name,
			City: m.Wholesaler.City,
		}
	}
	return dto
}

// NewInvoiceDTOs maps a slice of models.
func NewInvoiceDTOs(rows []models.Invoice) []InvoiceDTO {
	out := make([]InvoiceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewInvoiceDTO(&rows[i]))
	}
	return out
}
