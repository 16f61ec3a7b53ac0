package category

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db"
	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/slug"
)

// Service exposes category and header category management plus the public
// slug-to-products listing.
type Service interface {
	Create(ctx context.Context, input Input) (*CategoryDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	List(ctx context.Context, activeOnly bool) ([]CategoryDTO, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*CategoryDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AttachImage(ctx context.Context, id uuid.UUID, contentType string, file io.Reader) (*CategoryDTO, error)
	ProductsBySlug(ctx context.Context, slugValue string) (*CategoryProductsResult, error)

	CreateHeader(ctx context.Context, input HeaderInput) (*HeaderCategoryDTO, error)
	GetHeader(ctx context.Context, id uuid.UUID) (*HeaderCategoryDTO, error)
	ListHeaders(ctx context.Context, activeOnly bool) ([]HeaderCategoryDTO, error)
	UpdateHeader(ctx context.Context, id uuid.UUID, input HeaderInput) (*HeaderCategoryDTO, error)
	DeleteHeader(ctx context.Context, id uuid.UUID) error
}

// Input holds category fields. Slug derives from the name at creation and is
// never regenerated on rename.
type Input struct {
	Name     string
	IsActive bool
}

// HeaderInput holds header category fields.
type HeaderInput struct {
	Name     string
	Position int
	IsActive bool
}

// CategoryProductsResult is the payload of the public category page: the
// category itself plus its active products. Products may be empty; a missing
// category is a distinct 404.
type CategoryProductsResult struct {
	Category CategoryDTO  `json:"category"`
	Products []ProductRef `json:"products"`
}

// ProductRef is a storefront product summary under one category.
type ProductRef struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Slug   string    `json:"slug"`
	Price  float64   `json:"price"`
	Images []string  `json:"images"`
}

type repository interface {
	Create(ctx context.Context, row *models.Category) (*models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]models.Category, error)
	Update(ctx context.Context, row *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateHeader(ctx context.Context, row *models.HeaderCategory) (*models.HeaderCategory, error)
	FindHeaderByID(ctx context.Context, id uuid.UUID) (*models.HeaderCategory, error)
	ListHeaders(ctx context.Context, activeOnly bool) ([]models.HeaderCategory, error)
	UpdateHeader(ctx context.Context, row *models.HeaderCategory) (*models.HeaderCategory, error)
	DeleteHeader(ctx context.Context, id uuid.UUID) error
}

type productLister interface {
	ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
}

type imageStore interface {
	SaveImage(scope, contentType string, r io.Reader) (string, error)
	Remove(publicPath string) error
}

type service struct {
	repo     repository
	products productLister
	images   imageStore
}

// NewService constructs a category service instance.
func NewService(repo repository, products productLister, images imageStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lister required")
	}
	if images == nil {
		return nil, fmt.Errorf("image store required")
	}
	return &service{repo: repo, products: products, images: images}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*CategoryDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	row := &models.Category{
		Name:     strings.TrimSpace(input.Name),
		Slug:     slug.Make(input.Name),
		IsActive: input.IsActive,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "A category with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert category")
	}
	return NewCategoryDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	row, err := s.loadCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCategoryDTO(row), nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]CategoryDTO, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list categories")
	}
	return NewCategoryDTOs(rows), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*CategoryDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	row, err := s.loadCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	// slug intentionally untouched on rename
	row.Name = strings.TrimSpace(input.Name)
	row.IsActive = input.IsActive

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update category")
	}
	return NewCategoryDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	row, err := s.loadCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete category")
	}
	if row.ImagePath != nil {
		// best effort, the row is already gone
		_ = s.images.Remove(*row.ImagePath)
	}
	return nil
}

// AttachImage stores the uploaded file and points the category at it,
// replacing any previous image.
func (s *service) AttachImage(ctx context.Context, id uuid.UUID, contentType string, file io.Reader) (*CategoryDTO, error) {
	row, err := s.loadCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	publicPath, err := s.images.SaveImage("categories", contentType, file)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "storing category image")
	}

	previous := row.ImagePath
	row.ImagePath = &publicPath
	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		_ = s.images.Remove(publicPath)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update category image")
	}
	if previous != nil && *previous != publicPath {
		_ = s.images.Remove(*previous)
	}
	return NewCategoryDTO(updated), nil
}

// ProductsBySlug serves the public category page. A missing category is a
// 404; a present category with no products returns an empty list.
func (s *service) ProductsBySlug(ctx context.Context, slugValue string) (*CategoryProductsResult, error) {
	row, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load category by slug")
	}
	if !row.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Category not found")
	}

	products, err := s.products.ListActiveByCategory(ctx, row.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list category products")
	}

	refs := make([]ProductRef, 0, len(products))
	for i := range products {
		p := &products[i]
		refs = append(refs, ProductRef{
			ID:     p.ID,
			Name:   p.Name,
			Slug:   p.Slug,
			Price:  p.Price,
			Images: append([]string{}, p.Images...),
		})
	}
	return &CategoryProductsResult{Category: *NewCategoryDTO(row), Products: refs}, nil
}

func (s *service) CreateHeader(ctx context.Context, input HeaderInput) (*HeaderCategoryDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	row := &models.HeaderCategory{
		Name:     strings.TrimSpace(input.Name),
		Slug:     slug.Make(input.Name),
		Position: input.Position,
		IsActive: input.IsActive,
	}
	created, err := s.repo.CreateHeader(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "A header category with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert header category")
	}
	return NewHeaderCategoryDTO(created), nil
}

func (s *service) GetHeader(ctx context.Context, id uuid.UUID) (*HeaderCategoryDTO, error) {
	row, err := s.loadHeader(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewHeaderCategoryDTO(row), nil
}

func (s *service) ListHeaders(ctx context.Context, activeOnly bool) ([]HeaderCategoryDTO, error) {
	rows, err := s.repo.ListHeaders(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list header categories")
	}
	return NewHeaderCategoryDTOs(rows), nil
}

func (s *service) UpdateHeader(ctx context.Context, id uuid.UUID, input HeaderInput) (*HeaderCategoryDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	row, err := s.loadHeader(ctx, id)
	if err != nil {
		return nil, err
	}
	row.Name = strings.TrimSpace(input.Name)
	row.Position = input.Position
	row.IsActive = input.IsActive

	updated, err := s.repo.UpdateHeader(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update header category")
	}
	return NewHeaderCategoryDTO(updated), nil
}

func (s *service) DeleteHeader(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadHeader(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteHeader(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete header category")
	}
	return nil
}

func (s *service) loadCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load category")
	}
	return row, nil
}

func (s *service) loadHeader(ctx context.Context, id uuid.UUID) (*models.HeaderCategory, error) {
	row, err := s.repo.FindHeaderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Header category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load header category")
	}
	return row, nil
}
