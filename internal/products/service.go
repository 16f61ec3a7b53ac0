package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db"
	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/slug"
)

// Service exposes catalog product management and storefront reads.
type Service interface {
	Create(ctx context.Context, input Input) (*ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	List(ctx context.Context, activeOnly bool) ([]ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slugValue string) (*ProductDTO, error)
}

// Input holds product fields for create and update. The slug is derived from
// the name at creation and never changes afterwards, so renames keep old
// storefront links working.
type Input struct {
	Name       string
	Price      float64
	OldPrice   *float64
	Discount   *float64
	Images     []string
	CategoryID *uuid.UUID
	RelatedIDs []uuid.UUID
	IsActive   bool
}

type repository interface {
	Create(ctx context.Context, row *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	List(ctx context.Context, activeOnly bool) ([]models.Product, error)
	Update(ctx context.Context, row *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a product service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row := &models.Product{
		Slug: slug.Make(input.Name),
	}
	applyInput(row, input)

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "A product with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return NewProductDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return NewProductDTO(row), nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	return NewProductDTOs(rows), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	// slug intentionally untouched on rename
	applyInput(row, input)

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	return NewProductDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	return nil
}

// GetBySlug serves the storefront detail page: active products only, with the
// related id list resolved to summaries. Related ids pointing at deleted or
// inactive products are skipped.
func (s *service) GetBySlug(ctx context.Context, slugValue string) (*ProductDTO, error) {
	row, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product by slug")
	}
	if !row.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}

	dto := NewProductDTO(row)
	related, err := s.resolveRelated(ctx, row.RelatedIDs)
	if err != nil {
		return nil, err
	}
	dto.Related = related
	return dto, nil
}

func (s *service) resolveRelated(ctx context.Context, ids []uuid.UUID) ([]ProductDTO, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load related products")
	}

	byID := make(map[uuid.UUID]*models.Product, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	// preserve the order stored on the parent row
	out := make([]ProductDTO, 0, len(ids))
	for _, id := range ids {
		rel, ok := byID[id]
		if !ok || !rel.IsActive {
			continue
		}
		out = append(out, *NewProductDTO(rel))
	}
	return out, nil
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	if input.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Price cannot be negative")
	}
	return nil
}

func applyInput(row *models.Product, input Input) {
	row.Name = strings.TrimSpace(input.Name)
	row.Price = input.Price
	row.OldPrice = input.OldPrice
	row.Discount = input.Discount
	row.Images = append([]string{}, input.Images...)
	row.CategoryID = input.CategoryID
	row.RelatedIDs = append([]uuid.UUID{}, input.RelatedIDs...)
	row.IsActive = input.IsActive
}
