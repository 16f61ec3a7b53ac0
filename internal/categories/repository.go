package category

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// Repository persists categories and header categories.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new category row.
func (r *Repository) Create(ctx context.Context, row *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads one category.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var row models.Category
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindBySlug loads one category by its slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var row models.Category
	if err := r.db.WithContext(ctx).First(&row, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns categories by name. activeOnly scopes to storefront rows.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var rows []models.Category
	err := q.Find(&rows).Error
	return rows, err
}

// Update saves the full category row.
func (r *Repository) Update(ctx context.Context, row *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a category by ID. Product references are left in place.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
}

// CreateHeader inserts a new header category row.
func (r *Repository) CreateHeader(ctx context.Context, row *models.HeaderCategory) (*models.HeaderCategory, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindHeaderByID loads one header category.
func (r *Repository) FindHeaderByID(ctx context.Context, id uuid.UUID) (*models.HeaderCategory, error) {
	var row models.HeaderCategory
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListHeaders returns header categories in navigation order.
func (r *Repository) ListHeaders(ctx context.Context, activeOnly bool) ([]models.HeaderCategory, error) {
	q := r.db.WithContext(ctx).Order("position ASC, name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var rows []models.HeaderCategory
	err := q.Find(&rows).Error
	return rows, err
}

// UpdateHeader saves the full header category row.
func (r *Repository) UpdateHeader(ctx context.Context, row *models.HeaderCategory) (*models.HeaderCategory, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteHeader removes a header category by ID.
func (r *Repository) DeleteHeader(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HeaderCategory{}).Error
}
