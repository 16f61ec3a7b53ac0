package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// CategoryDTO is the API payload for a product category.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ImagePath *string   `json:"image_path,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HeaderCategoryDTO is the API payload for a navigation-bar entry.
type HeaderCategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategoryDTO builds a DTO from the persisted model.
func NewCategoryDTO(m *models.Category) *CategoryDTO {
	if m == nil {
		return nil
	}
	return &CategoryDTO{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		ImagePath: m.ImagePath,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewCategoryDTOs maps a slice of models.
func NewCategoryDTOs(rows []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCategoryDTO(&rows[i]))
	}
	return out
}

// NewHeaderCategoryDTO builds a DTO from the persisted model.
func NewHeaderCategoryDTO(m *models.HeaderCategory) *HeaderCategoryDTO {
	if m == nil {
		return nil
	}
	return &HeaderCategoryDTO{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Position:  m.Position,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewHeaderCategoryDTOs maps a slice of models.
func NewHeaderCategoryDTOs(rows []models.HeaderCategory) []HeaderCategoryDTO {
	out := make([]HeaderCategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewHeaderCategoryDTO(&rows[i]))
	}
	return out
}
