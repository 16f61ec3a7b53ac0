package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

type pairKey struct {
	user    uuid.UUID
	product uuid.UUID
}

type stubRepo struct {
	rows map[pairKey]*models.WishlistItem
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: map[pairKey]*models.WishlistItem{}}
}

func (s *stubRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error) {
	row, ok := s.rows[pairKey{userID, productID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	for key, row := range s.rows {
		if key.user == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, row *models.WishlistItem) (*models.WishlistItem, error) {
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	clone := *row
	s.rows[pairKey{row.UserID, row.ProductID}] = &clone
	return row, nil
}

func (s *stubRepo) Delete(_ context.Context, userID, productID uuid.UUID) error {
	delete(s.rows, pairKey{userID, productID})
	return nil
}

type stubProducts struct {
	rows map[uuid.UUID]*models.Product
}

func newStubProducts() *stubProducts {
	return &stubProducts{rows: map[uuid.UUID]*models.Product{}}
}

func (s *stubProducts) add(name string, active bool) uuid.UUID {
	id := uuid.New()
	s.rows[id] = &models.Product{ID: id, Name: name, Slug: name, Price: 1499, IsActive: active}
	return id
}

func (s *stubProducts) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubProducts) FindByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if row, ok := s.rows[id]; ok {
			out = append(out, *row)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*service, *stubProducts) {
	t.Helper()
	products := newStubProducts()
	svc, err := NewService(newStubRepo(), products)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc.(*service), products
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := products.add("chiffon-saree", true)

	first, err := svc.Add(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := svc.Add(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatal("expected the same entry on repeat add")
	}

	items, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one entry, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "chiffon-saree" {
		t.Fatalf("expected product summary, got %+v", items[0].Product)
	}
}

func TestAddRejectsMissingAndInactiveProducts(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	inactiveID := products.add("discontinued", false)

	_, err := svc.Add(ctx, userID, uuid.New())
	expectCode(t, err, pkgerrors.CodeNotFound)

	_, err = svc.Add(ctx, userID, inactiveID)
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestListKeepsEntriesForDeletedProducts(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := products.add("fleeting", true)

	if _, err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	delete(products.rows, productID)

	items, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the orphan entry to survive, got %d", len(items))
	}
	if items[0].Product != nil {
		t.Fatal("expected null product on orphan entry")
	}
}

func TestRemove(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := products.add("organza", true)

	if _, err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(ctx, userID, productID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	expectCode(t, svc.Remove(ctx, userID, productID), pkgerrors.CodeNotFound)

	items, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %d", len(items))
	}
}
