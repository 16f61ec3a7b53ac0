package content

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

// Service manages the storefront's promotional content: banners,
// testimonials, and blog posts.
type Service interface {
	CreateBanner(ctx context.Context, input BannerInput) (*BannerDTO, error)
	GetBanner(ctx context.Context, id uuid.UUID) (*BannerDTO, error)
	ListBanners(ctx context.Context, activeOnly bool) ([]BannerDTO, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, input BannerInput) (*BannerDTO, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	CreateTestimonial(ctx context.Context, input TestimonialInput) (*TestimonialDTO, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*TestimonialDTO, error)
	ListTestimonials(ctx context.Context, activeOnly bool) ([]TestimonialDTO, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, input TestimonialInput) (*TestimonialDTO, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	CreateBlog(ctx context.Context, input BlogInput) (*BlogDTO, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*BlogDTO, error)
	GetBlogBySlug(ctx context.Context, slugValue string) (*BlogDTO, error)
	ListBlogs(ctx context.Context, activeOnly bool) ([]BlogDTO, error)
	UpdateBlog(ctx context.Context, id uuid.UUID, input BlogInput) (*BlogDTO, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

// BannerInput holds banner fields for create and update.
type BannerInput struct {
	Title    string
	ImageURL string
	LinkURL  *string
	Position int
	IsActive bool
}

// TestimonialInput holds testimonial fields for create and update.
type TestimonialInput struct {
	Author   string
	Quote    string
	Rating   int
	IsActive bool
}

// BlogInput holds blog fields for create and update. The slug derives from
// the title at creation and never changes afterwards.
type BlogInput struct {
	Title    string
	Body     string
	CoverURL *string
	IsActive bool
}

type repository interface {
	CreateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error)
	FindBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	UpdateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	CreateTestimonial(ctx context.Context, row *models.Testimonial) (*models.Testimonial, error)
	FindTestimonialByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, row *models.Testimonial) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	CreateBlog(ctx context.Context, row *models.Blog) (*models.Blog, error)
	FindBlogByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	FindBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListBlogs(ctx context.Context, activeOnly bool) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, row *models.Blog) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a content service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("content repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateBanner(ctx context.Context, input BannerInput) (*BannerDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Title is required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Image is required")
	}
	row := &models.Banner{}
	applyBanner(row, input)

	created, err := s.repo.CreateBanner(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert banner")
	}
	return newBannerDTO(created), nil
}

func (s *service) GetBanner(ctx context.Context, id uuid.UUID) (*BannerDTO, error) {
	row, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "Banner not found", "db: load banner")
	}
	return newBannerDTO(row), nil
}

func (s *service) ListBanners(ctx context.Context, activeOnly bool) ([]BannerDTO, error) {
	rows, err := s.repo.ListBanners(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list banners")
	}
	out := make([]BannerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newBannerDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) UpdateBanner(ctx context.Context, id uuid.UUID, input BannerInput) (*BannerDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Title is required")
	}
	row, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "Banner not found", "db: load banner")
	}
	applyBanner(row, input)

	updated, err := s.repo.UpdateBanner(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update banner")
	}
	return newBannerDTO(updated), nil
}

func (s *service) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindBannerByID(ctx, id); err != nil {
		return notFoundOrDependency(err, "Banner not found", "db: load banner")
	}
	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete banner")
	}
	return nil
}

func (s *service) CreateTestimonial(ctx context.Context, input TestimonialInput) (*TestimonialDTO, error) {
	if err := validateTestimonial(input); err != nil {
		return nil, err
	}
	row := &models.Testimonial{}
	applyTestimonial(row, input)

	created, err := s.repo.CreateTestimonial(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert testimonial")
	}
	return newTestimonialDTO(created), nil
}

func (s *service) GetTestimonial(ctx context.Context, id uuid.UUID) (*TestimonialDTO, error) {
	row, err := s.repo.FindTestimonialByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "Testimonial not found", "db: load testimonial")
	}
	return newTestimonialDTO(row), nil
}

func (s *service) ListTestimonials(ctx context.Context, activeOnly bool) ([]TestimonialDTO, error) {
	rows, err := s.repo.ListTestimonials(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list testimonials")
	}
	out := make([]TestimonialDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newTestimonialDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) UpdateTestimonial(ctx context.Context, id uuid.UUID, input TestimonialInput) (*TestimonialDTO, error) {
	if err := validateTestimonial(input); err != nil {
		return nil, err
	}
	row, err := s.repo.FindTestimonialByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "Testimonial not found", "db: load testimonial")
	}
	applyTestimonial(row, input)

	updated, err := s.repo.UpdateTestimonial(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update testimonial")
	}
	return newTestimonialDTO(updated), nil
}

func (s *service) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindTestimonialByID(ctx, id); err != nil {
		return notFoundOrDependency(err, "Testimonial not found", "db: load testimonial")
	}
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete testimonial")
	}
	return nil
}

func (s *service) CreateBlog(ctx context.Context, input BlogInput) (*BlogDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Title is required")
	}
	row := &models.Blog{
		Slug: slug.Make(input.Title),
	}
	applyBlog(row, input)

	created, err := s.repo.CreateBlog(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "A blog with this title already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert blog")
	}
	return newBlogDTO(created), nil
}

func (s *service) GetBlog(ctx context.Context, id uuid.UUID) (*BlogDTO, error) {
	row, err := s.repo.FindBlogByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "Blog not found", "db: load blog")
	}
	return newBlogDTO(row), nil
}

// GetBlogBySlug serves the public blog page: active posts only.
func (s *service) GetBlogBySlug(ctx context.Context, slugValue string) (*BlogDTO, error) {
	row, err := s.repo.FindBlogBySlug(ctx, slugValue)
	if err != nil {
		return nil, notFoundOrDependency(err, "Blog not found", "db: load blog by slug")
	}
	if !row.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Blog not found")
	}
	return newBlogDTO(row), nil
}

func (s *service) ListBlogs(ctx context.Context, activeOnly bool) ([]BlogDTO, error) {
	rows, err := s.repo.ListBlogs(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list blogs")
	}
	out := make([]BlogDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newBlogDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) UpdateBlog(ctx context.Context, id uuid.UUID, input BlogInput) (*BlogDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Title is required")
	}
	row, err := s.repo.FindBlogByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "Blog not found", "db: load blog")
	}
	// slug intentionally untouched on rename
	applyBlog(row, input)

	updated, err := s.repo.UpdateBlog(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update blog")
	}
	return newBlogDTO(updated), nil
}

func (s *service) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindBlogByID(ctx, id); err != nil {
		return notFoundOrDependency(err, "Blog not found", "db: load blog")
	}
	if err := s.repo.DeleteBlog(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete blog")
	}
	return nil
}

func validateTestimonial(input TestimonialInput) error {
	if strings.TrimSpace(input.Author) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Author is required")
	}
	if strings.TrimSpace(input.Quote) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Quote is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Rating must be between 1 and 5")
	}
	return nil
}

func applyBanner(row *models.Banner, input BannerInput) {
	row.Title = strings.TrimSpace(input.Title)
	row.ImageURL = strings.TrimSpace(input.ImageURL)
	row.LinkURL = input.LinkURL
	row.Position = input.Position
	row.IsActive = input.IsActive
}

func applyTestimonial(row *models.Testimonial, input TestimonialInput) {
	row.Author = strings.TrimSpace(input.Author)
	row.Quote = strings.TrimSpace(input.Quote)
	row.Rating = input.Rating
	row.IsActive = input.IsActive
}

func applyBlog(row *models.Blog, input BlogInput) {
	row.Title = strings.TrimSpace(input.Title)
	row.Body = input.Body
	row.CoverURL = input.CoverURL
	row.IsActive = input.IsActive
}

func notFoundOrDependency(err error, notFoundMsg, depMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMsg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, depMsg)
}
