package wholesaler

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// WholesalerDTO is the API payload for a supplier.
type WholesalerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Area      string    `json:"area"`
	City      string    `json:"city"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Pincode   *string   `json:"pincode,omitempty"`
	GSTNumber *string   `json:"gst_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWholesalerDTO builds a DTO from the persisted model.
func NewWholesalerDTO(m *models.Wholesaler) *WholesalerDTO {
	if m == nil {
		return nil
	}
	return &WholesalerDTO{
		ID:        m.ID,
		Name:      m.Name,
		Area:      m.Area,
		City:      m.City,
		Email:     m.Email,
		Phone:     m.Phone,
		Pincode:   m.Pincode,
		GSTNumber: m.GSTNumber,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewWholesalerDTOs maps a slice of models.
func NewWholesalerDTOs(rows []models.Wholesaler) []WholesalerDTO {
	out := make([]WholesalerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewWholesalerDTO(&rows[i]))
	}
	return out
}
