package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

// Service manages the per-user wishlist.
type Service interface {
	Add(ctx context.Context, userID, productID uuid.UUID) (*ItemDTO, error)
	List(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type repository interface {
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	Create(ctx context.Context, row *models.WishlistItem) (*models.WishlistItem, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

type productReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type service struct {
	repo     repository
	products productReader
}

// NewService constructs a wishlist service instance.
func NewService(repo repository, products productReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wishlist repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	return &service{repo: repo, products: products}, nil
}

// Add is idempotent: liking a product twice returns the existing entry.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) (*ItemDTO, error) {
	product, err := s.loadActiveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		dto := newItemDTO(existing, product)
		return &dto, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		created, err := s.repo.Create(ctx, &models.WishlistItem{
			UserID:    userID,
			ProductID: productID,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert wishlist entry")
		}
		dto := newItemDTO(created, product)
		return &dto, nil
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load wishlist entry")
	}
}

// List renders the wishlist with product summaries. Entries for deleted
// products survive with a null product.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list wishlist")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load wishlist products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newItemDTO(&rows[i], byID[rows[i].ProductID]))
	}
	return out, nil
}

// Remove drops one entry. Removing an absent entry is a 404.
func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.repo.FindByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Wishlist item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load wishlist entry")
	}
	if err := s.repo.Delete(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete wishlist entry")
	}
	return nil
}

func (s *service) loadActiveProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return product, nil
}
