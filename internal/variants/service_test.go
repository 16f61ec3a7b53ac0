package variant

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

type stubRepo struct {
	rows map[uuid.UUID]*models.GarmentVariant
	now  time.Time
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		rows: make(map[uuid.UUID]*models.GarmentVariant),
		now:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *stubRepo) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *stubRepo) Create(ctx context.Context, row *models.GarmentVariant) (*models.GarmentVariant, error) {
	row.ID = uuid.New()
	row.UpdatedAt = s.tick()
	s.rows[row.ID] = row
	return row, nil
}

func (s *stubRepo) FindByID(ctx context.Context, kind enums.VariantKind, id uuid.UUID) (*models.GarmentVariant, error) {
	row, ok := s.rows[id]
	if !ok || row.Kind != kind {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) List(ctx context.Context, kind enums.VariantKind, parentID *uuid.UUID) ([]models.GarmentVariant, error) {
	var out []models.GarmentVariant
	for _, row := range s.rows {
		if row.Kind != kind {
			continue
		}
		if parentID != nil && (row.ParentProductID == nil || *row.ParentProductID != *parentID) {
			continue
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, row *models.GarmentVariant) (*models.GarmentVariant, error) {
	row.UpdatedAt = s.tick()
	s.rows[row.ID] = row
	return row, nil
}

func (s *stubRepo) Delete(ctx context.Context, kind enums.VariantKind, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

type stubProducts struct {
	existing map[uuid.UUID]bool
}

func (s *stubProducts) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.existing[id], nil
}

func newTestService(t *testing.T) (Service, *stubRepo, *stubProducts) {
	t.Helper()
	repo := newStubRepo()
	products := &stubProducts{existing: make(map[uuid.UUID]bool)}
	svc, err := NewService(repo, products)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, products
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }

func TestCreateRequiresExistingParent(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()

	missing := uuid.New()
	_, err := svc.Create(ctx, enums.VariantKindBlouse, CreateInput{
		Name:            "Silk Blouse",
		WholesalerID:    uuid.New(),
		ParentProductID: &missing,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing parent, got %v", err)
	}

	parent := uuid.New()
	products.existing[parent] = true
	created, err := svc.Create(ctx, enums.VariantKindBlouse, CreateInput{
		Name:            "Silk Blouse",
		WholesalerID:    uuid.New(),
		ParentProductID: &parent,
		Attributes:      map[string]any{"sleeve": "elbow"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ParentProductID == nil || *created.ParentProductID != parent {
		t.Fatalf("expected parent reference to persist")
	}
	if created.Attributes["sleeve"] != "elbow" {
		t.Fatalf("expected attribute bag to persist, got %v", created.Attributes)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, enums.VariantKindBlouse, CreateInput{WholesalerID: uuid.New()}); pkgerrors.As(err) == nil {
		t.Fatalf("expected error for missing name, got %v", err)
	}
	if _, err := svc.Create(ctx, enums.VariantKindBlouse, CreateInput{Name: "X"}); pkgerrors.As(err) == nil {
		t.Fatalf("expected error for missing wholesaler, got %v", err)
	}
	if _, err := svc.Create(ctx, enums.VariantKindBlouse, CreateInput{Name: "X", WholesalerID: uuid.New(), Quantity: -1}); pkgerrors.As(err) == nil {
		t.Fatalf("expected error for negative quantity, got %v", err)
	}
	if _, err := svc.Create(ctx, enums.VariantKind("saree"), CreateInput{Name: "X", WholesalerID: uuid.New()}); pkgerrors.As(err) == nil {
		t.Fatalf("expected error for unknown kind, got %v", err)
	}
}

func TestListOrdersByUpdatedAtAndFiltersParent(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()

	parent := uuid.New()
	products.existing[parent] = true

	first, err := svc.Create(ctx, enums.VariantKindOnePcKurti, CreateInput{
		Name: "Older Kurti", WholesalerID: uuid.New(), ParentProductID: &parent,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, enums.VariantKindOnePcKurti, CreateInput{
		Name: "Newer Kurti", WholesalerID: uuid.New(), ParentProductID: &parent,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// different parent, excluded from the filtered list
	if _, err := svc.Create(ctx, enums.VariantKindOnePcKurti, CreateInput{
		Name: "Unrelated Kurti", WholesalerID: uuid.New(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// different kind, never visible on this route
	if _, err := svc.Create(ctx, enums.VariantKindBlouse, CreateInput{
		Name: "Blouse", WholesalerID: uuid.New(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// touching the older row moves it to the front
	if _, err := svc.Update(ctx, enums.VariantKindOnePcKurti, first.ID, UpdateInput{Quantity: intPtr(7)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	rows, err := svc.List(ctx, enums.VariantKindOnePcKurti, &parent)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 variants for parent, got %d", len(rows))
	}
	if rows[0].ID != first.ID {
		t.Fatalf("expected most recently updated variant first")
	}
	if rows[0].Quantity != 7 {
		t.Fatalf("expected patched quantity, got %d", rows[0].Quantity)
	}
}

func TestUpdatePatchLeavesUnsetFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, enums.VariantKindThreePcLehenga, CreateInput{
		Name:         "Bridal Lehenga",
		WholesalerID: uuid.New(),
		Fabric:       "silk",
		Quantity:     3,
		Attributes:   map[string]any{"dupatta": "net"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, enums.VariantKindThreePcLehenga, created.ID, UpdateInput{
		Work: strPtr("zari"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Work != "zari" {
		t.Fatalf("expected patched work, got %q", updated.Work)
	}
	if updated.Fabric != "silk" || updated.Quantity != 3 {
		t.Fatalf("unset fields must not change: %+v", updated)
	}
	if updated.Attributes["dupatta"] != "net" {
		t.Fatalf("attribute bag must survive a patch without attributes")
	}
}

func TestGetScopedByKind(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, enums.VariantKindPetticoatKurti, CreateInput{
		Name: "Petticoat Set", WholesalerID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// same id through the wrong kind route is a 404
	_, err = svc.Get(ctx, enums.VariantKindBlouse, created.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found across kinds, got %v", err)
	}
}

func TestDeleteVariant(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, enums.VariantKindTwoPcKurti, CreateInput{
		Name: "Kurti Set", WholesalerID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, enums.VariantKindTwoPcKurti, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, enums.VariantKindTwoPcKurti, created.ID); pkgerrors.As(err) == nil {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
