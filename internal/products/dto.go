package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// ProductDTO is the API payload for a catalog product.
type ProductDTO struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	Price      float64      `json:"price"`
	OldPrice   *float64     `json:"old_price,omitempty"`
	Discount   *float64     `json:"discount,omitempty"`
	Images     []string     `json:"images"`
	CategoryID *uuid.UUID   `json:"category_id,omitempty"`
	RelatedIDs []uuid.UUID  `json:"related_ids"`
	IsActive   bool         `json:"is_active"`
	Related    []ProductDTO `json:"related,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		Price:      m.Price,
		OldPrice:   m.OldPrice,
		Discount:   m.Discount,
		Images:     append([]string{}, m.Images...),
		CategoryID: m.CategoryID,
		RelatedIDs: append([]uuid.UUID{}, m.RelatedIDs...),
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// NewProductDTOs maps a slice of models.
func NewProductDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductDTO(&rows[i]))
	}
	return out
}
