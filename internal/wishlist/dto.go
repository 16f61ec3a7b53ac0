package wishlist

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// ItemProduct is the catalog summary a wishlist entry renders with.
type ItemProduct struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Price    float64   `json:"price"`
	Images   []string  `json:"images"`
	IsActive bool      `json:"is_active"`
}

// ItemDTO is one wishlist entry. Product is null when the catalog row has
// been deleted since the entry was added.
type ItemDTO struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	Product   *ItemProduct `json:"product"`
	CreatedAt time.Time    `json:"created_at"`
}

func newItemDTO(row *models.WishlistItem, product *models.Product) ItemDTO {
	dto := ItemDTO{
		ID:        row.ID,
		ProductID: row.ProductID,
		CreatedAt: row.CreatedAt,
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
