package cart

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
	rows map[pairKey]*models.CartItem
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: map[pairKey]*models.CartItem{}}
}

func (s *stubRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	row, ok := s.rows[pairKey{userID, productID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for key, row := range s.rows {
		if key.user == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, row *models.CartItem) (*models.CartItem, error) {
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	clone := *row
	s.rows[pairKey{row.UserID, row.ProductID}] = &clone
	return row, nil
}

func (s *stubRepo) Update(_ context.Context, row *models.CartItem) (*models.CartItem, error) {
	key := pairKey{row.UserID, row.ProductID}
	if _, ok := s.rows[key]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row.UpdatedAt = time.Now()
	clone := *row
	s.rows[key] = &clone
	return row, nil
}

func (s *stubRepo) Delete(_ context.Context, userID, productID uuid.UUID) error {
	delete(s.rows, pairKey{userID, productID})
	return nil
}

func (s *stubRepo) Clear(_ context.Context, userID uuid.UUID) error {
	for key := range s.rows {
		if key.user == userID {
			delete(s.rows, key)
		}
	}
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
	s.rows[id] = &models.Product{ID: id, Name: name, Slug: name, Price: 999, IsActive: active}
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

func newTestService(t *testing.T) (*service, *stubRepo, *stubProducts) {
	t.Helper()
	repo := newStubRepo()
	products := newStubProducts()
	svc, err := NewService(repo, products)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc.(*service), repo, products
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestAddUpsertsQuantity(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := products.add("banarasi-saree", true)

	first, err := svc.Add(ctx, userID, productID, 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}

	second, err := svc.Add(ctx, userID, productID, 3)
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
	if second.ID != first.ID {
		t.Fatal("expected the same line, not a second row")
	}

	items, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "banarasi-saree" {
		t.Fatalf("expected product summary, got %+v", items[0].Product)
	}
}

func TestAddRejectsMissingInactiveAndZeroQuantity(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	inactiveID := products.add("retired-kurti", false)
	activeID := products.add("live-kurti", true)

	_, err := svc.Add(ctx, userID, uuid.New(), 1)
	expectCode(t, err, pkgerrors.CodeNotFound)

	_, err = svc.Add(ctx, userID, inactiveID, 1)
	expectCode(t, err, pkgerrors.CodeNotFound)

	_, err = svc.Add(ctx, userID, activeID, 0)
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestListKeepsLinesForDeletedProducts(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := products.add("soon-gone", true)

	if _, err := svc.Add(ctx, userID, productID, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	delete(products.rows, productID)

	items, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the orphan line to survive, got %d lines", len(items))
	}
	if items[0].Product != nil {
		t.Fatal("expected null product on orphan line")
	}
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := products.add("lehenga", true)

	if _, err := svc.Add(ctx, userID, productID, 4); err != nil {
		t.Fatalf("Add: %v", err)
	}
	updated, err := svc.UpdateQuantity(ctx, userID, productID, 1)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if updated.Quantity != 1 {
		t.Fatalf("expected absolute quantity 1, got %d", updated.Quantity)
	}

	_, err = svc.UpdateQuantity(ctx, userID, uuid.New(), 1)
	expectCode(t, err, pkgerrors.CodeNotFound)

	_, err = svc.UpdateQuantity(ctx, userID, productID, 0)
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestRemoveAndClear(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	first := products.add("saree-one", true)
	second := products.add("saree-two", true)

	for _, id := range []uuid.UUID{first, second} {
		if _, err := svc.Add(ctx, userID, id, 1); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if _, err := svc.Add(ctx, otherUser, first, 1); err != nil {
		t.Fatalf("Add other user: %v", err)
	}

	if err := svc.Remove(ctx, userID, first); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	expectCode(t, svc.Remove(ctx, userID, first), pkgerrors.CodeNotFound)

	if err := svc.Clear(ctx, userID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	items, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d", len(items))
	}

	// other carts untouched
	otherItems, err := svc.List(ctx, otherUser)
	if err != nil {
		t.Fatalf("List other: %v", err)
	}
	if len(otherItems) != 1 {
		t.Fatalf("expected other user's cart intact, got %d", len(otherItems))
	}
}
