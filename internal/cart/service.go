package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

// Service manages the per-user cart.
type Service interface {
	Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (*ItemDTO, error)
	List(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*ItemDTO, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type repository interface {
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Create(ctx context.Context, row *models.CartItem) (*models.CartItem, error)
	Update(ctx context.Context, row *models.CartItem) (*models.CartItem, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type productReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type service struct {
	repo     repository
	products productReader
}

// NewService constructs a cart service instance.
func NewService(repo repository, products productReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	return &service{repo: repo, products: products}, nil
}

// Add upserts a line: an existing user/product pair has its quantity bumped
// by the requested amount instead of creating a second row.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (*ItemDTO, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Quantity must be at least 1")
	}
	product, err := s.loadActiveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		existing.Quantity += quantity
		updated, err := s.repo.Update(ctx, existing)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update cart line")
		}
		dto := newItemDTO(updated, product)
		return &dto, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		created, err := s.repo.Create(ctx, &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert cart line")
		}
		dto := newItemDTO(created, product)
		return &dto, nil
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart line")
	}
}

// List renders the cart with product summaries. Lines pointing at deleted
// products stay in the cart with a null product.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list cart")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ProductID)
	}
	byID, err := s.productIndex(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newItemDTO(&rows[i], byID[rows[i].ProductID]))
	}
	return out, nil
}

// UpdateQuantity sets the absolute quantity on an existing line.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*ItemDTO, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Quantity must be at least 1")
	}
	row, err := s.repo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart line")
	}

	row.Quantity = quantity
	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update cart line")
	}

	byID, err := s.productIndex(ctx, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	dto := newItemDTO(updated, byID[productID])
	return &dto, nil
}

// Remove drops one line. Removing an absent line is a 404.
func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.repo.FindByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Cart item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart line")
	}
	if err := s.repo.Delete(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete cart line")
	}
	return nil
}

// Clear empties the cart. Clearing an empty cart succeeds.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: clear cart")
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

func (s *service) productIndex(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Product, error) {
	rows, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	return byID, nil
}
