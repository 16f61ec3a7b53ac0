package category

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

type stubRepo struct {
	categories map[uuid.UUID]*models.Category
	headers    map[uuid.UUID]*models.HeaderCategory
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		categories: make(map[uuid.UUID]*models.Category),
		headers:    make(map[uuid.UUID]*models.HeaderCategory),
	}
}

func (s *stubRepo) Create(ctx context.Context, row *models.Category) (*models.Category, error) {
	for _, existing := range s.categories {
		if existing.Slug == row.Slug {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	row.ID = uuid.New()
	s.categories[row.ID] = row
	return row, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row, ok := s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, row := range s.categories {
		if row.Slug == slug {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	var out []models.Category
	for _, row := range s.categories {
		if activeOnly && !row.IsActive {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, row *models.Category) (*models.Category, error) {
	s.categories[row.ID] = row
	return row, nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.categories, id)
	return nil
}

func (s *stubRepo) CreateHeader(ctx context.Context, row *models.HeaderCategory) (*models.HeaderCategory, error) {
	row.ID = uuid.New()
	s.headers[row.ID] = row
	return row, nil
}

func (s *stubRepo) FindHeaderByID(ctx context.Context, id uuid.UUID) (*models.HeaderCategory, error) {
	row, ok := s.headers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) ListHeaders(ctx context.Context, activeOnly bool) ([]models.HeaderCategory, error) {
	var out []models.HeaderCategory
	for _, row := range s.headers {
		if activeOnly && !row.IsActive {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubRepo) UpdateHeader(ctx context.Context, row *models.HeaderCategory) (*models.HeaderCategory, error) {
	s.headers[row.ID] = row
	return row, nil
}

func (s *stubRepo) DeleteHeader(ctx context.Context, id uuid.UUID) error {
	delete(s.headers, id)
	return nil
}

type stubProducts struct {
	byCategory map[uuid.UUID][]models.Product
}

func (s *stubProducts) ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	return s.byCategory[categoryID], nil
}

type stubImages struct {
	saved   []string
	removed []string
	fail    bool
}

func (s *stubImages) SaveImage(scope, contentType string, r io.Reader) (string, error) {
	if s.fail {
		return "", io.ErrUnexpectedEOF
	}
	path := "/uploads/" + scope + "/" + uuid.NewString() + ".png"
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *stubImages) Remove(publicPath string) error {
	s.removed = append(s.removed, publicPath)
	return nil
}

func newTestService(t *testing.T) (Service, *stubRepo, *stubProducts, *stubImages) {
	t.Helper()
	repo := newStubRepo()
	products := &stubProducts{byCategory: make(map[uuid.UUID][]models.Product)}
	images := &stubImages{}
	svc, err := NewService(repo, products, images)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, products, images
}

func TestCreateDerivesSlugOnce(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Festive Sarees", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "festive-sarees" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	updated, err := svc.Update(ctx, created.ID, Input{Name: "Wedding Sarees", IsActive: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "festive-sarees" {
		t.Fatalf("slug must survive a rename, got %q", updated.Slug)
	}
}

func TestProductsBySlugDistinguishesMissingFromEmpty(t *testing.T) {
	svc, _, products, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Festive Sarees", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// present but empty: 200 with an empty product list
	result, err := svc.ProductsBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("products by slug: %v", err)
	}
	if len(result.Products) != 0 {
		t.Fatalf("expected empty product list, got %d", len(result.Products))
	}

	products.byCategory[created.ID] = []models.Product{
		{ID: uuid.New(), Name: "Red Saree", Slug: "red-saree", Price: 999, IsActive: true},
	}
	result, err = svc.ProductsBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("products by slug: %v", err)
	}
	if len(result.Products) != 1 || result.Products[0].Slug != "red-saree" {
		t.Fatalf("expected one product ref, got %+v", result.Products)
	}

	// absent: 404
	_, err = svc.ProductsBySlug(ctx, "no-such-category")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAttachImageReplacesPrevious(t *testing.T) {
	svc, _, _, images := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Festive Sarees", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.AttachImage(ctx, created.ID, "image/png", strings.NewReader("img1"))
	if err != nil {
		t.Fatalf("attach image: %v", err)
	}
	if first.ImagePath == nil {
		t.Fatal("expected image path set")
	}

	second, err := svc.AttachImage(ctx, created.ID, "image/png", strings.NewReader("img2"))
	if err != nil {
		t.Fatalf("attach second image: %v", err)
	}
	if second.ImagePath == nil || *second.ImagePath == *first.ImagePath {
		t.Fatal("expected a fresh image path")
	}
	if len(images.removed) != 1 || images.removed[0] != *first.ImagePath {
		t.Fatalf("expected previous image removed, got %v", images.removed)
	}
}

func TestAttachImageRejectsBadUpload(t *testing.T) {
	svc, _, _, images := newTestService(t)
	images.fail = true
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Festive Sarees", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.AttachImage(ctx, created.ID, "image/png", strings.NewReader("img"))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHeaderCategoryLifecycle(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHeader(ctx, HeaderInput{Name: "New Arrivals", Position: 1, IsActive: true})
	if err != nil {
		t.Fatalf("create header: %v", err)
	}
	if created.Slug != "new-arrivals" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	if _, err := svc.CreateHeader(ctx, HeaderInput{Name: "Hidden", Position: 2, IsActive: false}); err != nil {
		t.Fatalf("create hidden header: %v", err)
	}

	public, err := svc.ListHeaders(ctx, true)
	if err != nil {
		t.Fatalf("list headers: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("expected 1 active header, got %d", len(public))
	}

	if err := svc.DeleteHeader(ctx, created.ID); err != nil {
		t.Fatalf("delete header: %v", err)
	}
	if _, err := svc.GetHeader(ctx, created.ID); pkgerrors.As(err) == nil {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
