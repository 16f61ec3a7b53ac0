package variant

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// WholesalerRef is the expanded supplier summary on variant reads. A deleted
// supplier renders the whole ref as null.
type WholesalerRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// VariantDTO is the API payload for one garment variant.
type VariantDTO struct {
	ID              uuid.UUID         `json:"id"`
	Kind            enums.VariantKind `json:"kind"`
	ParentProductID *uuid.UUID        `json:"parent_product_id"`
	WholesalerID    uuid.UUID         `json:"wholesaler_id"`
	Wholesaler      *WholesalerRef    `json:"wholesaler"`
	Name            string            `json:"name"`
	Fabric          string            `json:"fabric,omitempty"`
	Work            string            `json:"work,omitempty"`
	Sizes           []string          `json:"sizes"`
	Manufacturer    string            `json:"manufacturer,omitempty"`
	Quantity        int               `json:"quantity"`
	PurchasePrice   *float64          `json:"purchase_price,omitempty"`
	Attributes      map[string]any    `json:"attributes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// NewVariantDTO builds a DTO from the persisted model.
func NewVariantDTO(m *models.GarmentVariant) *VariantDTO {
	if m == nil {
		return nil
	}
	dto := &VariantDTO{
		ID:              m.ID,
		Kind:            m.Kind,
		ParentProductID: m.ParentProductID,
		WholesalerID:    m.WholesalerID,
		Name:            m.Name,
		Fabric:          m.Fabric,
		Work:            m.Work,
		Sizes:           append([]string{}, m.Sizes...),
		Manufacturer:    m.Manufacturer,
		Quantity:        m.Quantity,
		PurchasePrice:   m.PurchasePrice,
		Attributes:      map[string]any(m.Attributes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if dto.Attributes == nil {
		dto.Attributes = map[string]any{}
	}
	if m.Wholesaler != nil {
		dto.Wholesaler = &WholesalerRef{ID: m.Wholesaler.ID, Name: m.Wholesaler.Name}
	}
	return dto
}

// NewVariantDTOs maps a slice of models.
func NewVariantDTOs(rows []models.GarmentVariant) []VariantDTO {
	out := make([]VariantDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewVariantDTO(&rows[i]))
	}
	return out
}
