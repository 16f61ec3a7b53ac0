package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// Repository persists banners, testimonials, and blogs.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) FindBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	var row models.Banner
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	q := r.db.WithContext(ctx).Order("position ASC, created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var rows []models.Banner
	err := q.Find(&rows).Error
	return rows, err
}

func (r *Repository) UpdateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Banner{}).Error
}

func (r *Repository) CreateTestimonial(ctx context.Context, row *models.Testimonial) (*models.Testimonial, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) FindTestimonialByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	var row models.Testimonial
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var rows []models.Testimonial
	err := q.Find(&rows).Error
	return rows, err
}

func (r *Repository) UpdateTestimonial(ctx context.Context, row *models.Testimonial) (*models.Testimonial, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Testimonial{}).Error
}

func (r *Repository) CreateBlog(ctx context.Context, row *models.Blog) (*models.Blog, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) FindBlogByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var row models.Blog
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) FindBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var row models.Blog
	if err := r.db.WithContext(ctx).First(&row, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListBlogs(ctx context.Context, activeOnly bool) ([]models.Blog, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var rows []models.Blog
	err := q.Find(&rows).Error
	return rows, err
}

func (r *Repository) UpdateBlog(ctx context.Context, row *models.Blog) (*models.Blog, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Blog{}).Error
}
