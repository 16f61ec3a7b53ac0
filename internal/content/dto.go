package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// BannerDTO is the API payload for a storefront banner.
type BannerDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   *string   `json:"link_url,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TestimonialDTO is the API payload for a customer quote.
type TestimonialDTO struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogDTO is the API payload for a marketing post.
type BlogDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	CoverURL  *string   `json:"cover_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBannerDTO(m *models.Banner) *BannerDTO {
	if m == nil {
		return nil
	}
	return &BannerDTO{
		ID:        m.ID,
		Title:     m.Title,
		ImageURL:  m.ImageURL,
		LinkURL:   m.LinkURL,
		Position:  m.Position,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newTestimonialDTO(m *models.Testimonial) *TestimonialDTO {
	if m == nil {
		return nil
	}
	return &TestimonialDTO{
		ID:        m.ID,
		Author:    m.Author,
		Quote:     m.Quote,
		Rating:    m.Rating,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newBlogDTO(m *models.Blog) *BlogDTO {
	if m == nil {
		return nil
	}
	return &BlogDTO{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Body:      m.Body,
		CoverURL:  m.CoverURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
