package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// ItemProduct is the slice of the catalog row a cart line renders with.
type ItemProduct struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Price    float64   `json:"price"`
	Images   []string  `json:"images"`
	IsActive bool      `json:"is_active"`
}

// ItemDTO is one cart line. Product is null when the catalog row has been
// deleted since the line was added.
type ItemDTO struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Product   *ItemProduct `json:"product"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func newItemDTO(row *models.CartItem, product *models.Product) ItemDTO {
	dto := ItemDTO{
		ID:        row.ID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if product != nil {
		dto.Product = &ItemProduct{
			ID:       product.ID,
			Name:     product.Name,
			Slug:     product.Slug,
			Price:    product.Price,
			Images:   append([]string{}, product.Images...),
			IsActive: product.IsActive,
		}
	}
	return dto
}
