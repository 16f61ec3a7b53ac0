package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

type stubRepo struct {
	banners      map[uuid.UUID]*models.Banner
	testimonials map[uuid.UUID]*models.Testimonial
	blogs        map[uuid.UUID]*models.Blog
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		banners:      make(map[uuid.UUID]*models.Banner),
		testimonials: make(map[uuid.UUID]*models.Testimonial),
		blogs:        make(map[uuid.UUID]*models.Blog),
	}
}

func (s *stubRepo) CreateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error) {
	row.ID = uuid.New()
	s.banners[row.ID] = row
	return row, nil
}

func (s *stubRepo) FindBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	row, ok := s.banners[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	var out []models.Banner
	for _, row := range s.banners {
		if activeOnly && !row.IsActive {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubRepo) UpdateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error) {
	s.banners[row.ID] = row
	return row, nil
}

func (s *stubRepo) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	delete(s.banners, id)
	return nil
}

func (s *stubRepo) CreateTestimonial(ctx context.Context, row *models.Testimonial) (*models.Testimonial, error) {
	row.ID = uuid.New()
	s.testimonials[row.ID] = row
	return row, nil
}

func (s *stubRepo) FindTestimonialByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	row, ok := s.testimonials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	var out []models.Testimonial
	for _, row := range s.testimonials {
		if activeOnly && !row.IsActive {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubRepo) UpdateTestimonial(ctx context.Context, row *models.Testimonial) (*models.Testimonial, error) {
	s.testimonials[row.ID] = row
	return row, nil
}

func (s *stubRepo) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	delete(s.testimonials, id)
	return nil
}

func (s *stubRepo) CreateBlog(ctx context.Context, row *models.Blog) (*models.Blog, error) {
	for _, existing := range s.blogs {
		if existing.Slug == row.Slug {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	row.ID = uuid.New()
	s.blogs[row.ID] = row
	return row, nil
}

func (s *stubRepo) FindBlogByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	row, ok := s.blogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) FindBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	for _, row := range s.blogs {
		if row.Slug == slug {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListBlogs(ctx context.Context, activeOnly bool) ([]models.Blog, error) {
	var out []models.Blog
	for _, row := range s.blogs {
		if activeOnly && !row.IsActive {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubRepo) UpdateBlog(ctx context.Context, row *models.Blog) (*models.Blog, error) {
	s.blogs[row.ID] = row
	return row, nil
}

func (s *stubRepo) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	delete(s.blogs, id)
	return nil
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(newStubRepo())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestBannerLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBanner(ctx, BannerInput{Title: "Diwali Sale", ImageURL: "/uploads/banners/x.png", IsActive: true})
	if err != nil {
		t.Fatalf("create banner: %v", err)
	}

	if _, err := svc.CreateBanner(ctx, BannerInput{Title: "Hidden", ImageURL: "/x.png", IsActive: false}); err != nil {
		t.Fatalf("create hidden banner: %v", err)
	}

	public, err := svc.ListBanners(ctx, true)
	if err != nil {
		t.Fatalf("list banners: %v", err)
	}
	if len(public) != 1 || public[0].ID != created.ID {
		t.Fatalf("expected only the active banner, got %d", len(public))
	}

	if err := svc.DeleteBanner(ctx, created.ID); err != nil {
		t.Fatalf("delete banner: %v", err)
	}
	if _, err := svc.GetBanner(ctx, created.ID); pkgerrors.As(err) == nil {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestBannerValidation(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CreateBanner(context.Background(), BannerInput{ImageURL: "/x.png"}); pkgerrors.As(err) == nil {
		t.Fatal("expected error for missing title")
	}
	if _, err := svc.CreateBanner(context.Background(), BannerInput{Title: "X"}); pkgerrors.As(err) == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestTestimonialRatingBounds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.CreateTestimonial(ctx, TestimonialInput{Author: "A", Quote: "Q", Rating: rating}); pkgerrors.As(err) == nil {
			t.Fatalf("expected error for rating %d", rating)
		}
	}
	if _, err := svc.CreateTestimonial(ctx, TestimonialInput{Author: "A", Quote: "Q", Rating: 5, IsActive: true}); err != nil {
		t.Fatalf("valid testimonial rejected: %v", err)
	}
}

func TestBlogSlugLookup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, BlogInput{Title: "Styling a Banarasi Saree", Body: "...", IsActive: true})
	if err != nil {
		t.Fatalf("create blog: %v", err)
	}
	if created.Slug != "styling-a-banarasi-saree" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	got, err := svc.GetBlogBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != created.ID {
		t.Fatal("slug lookup returned wrong post")
	}

	hidden, err := svc.CreateBlog(ctx, BlogInput{Title: "Draft Post", Body: "...", IsActive: false})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := svc.GetBlogBySlug(ctx, hidden.Slug); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for inactive blog, got %v", err)
	}

	if _, err := svc.CreateBlog(ctx, BlogInput{Title: "Styling a Banarasi Saree", Body: "dup"}); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate title, got %v", err)
	}
}
