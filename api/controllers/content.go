package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rkhatri/vastra-backend/api/responses"
	"github.com/rkhatri/vastra-backend/api/validators"
	content "github.com/rkhatri/vastra-backend/internal/content"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/logger"
)

type bannerRequest struct {
	Title    string  `json:"title" validate:"required"`
	ImageURL string  `json:"image_url" validate:"required"`
	LinkURL  *string `json:"link_url,omitempty"`
	Position int     `json:"position" validate:"gte=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (p bannerRequest) toInput() content.BannerInput {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	return content.BannerInput{
		Title:    p.Title,
		ImageURL: p.ImageURL,
		LinkURL:  p.LinkURL,
		Position: p.Position,
		IsActive: isActive,
	}
}

type testimonialRequest struct {
	Author   string `json:"author" validate:"required"`
	Quote    string `json:"quote" validate:"required"`
	Rating   int    `json:"rating" validate:"required"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (p testimonialRequest) toInput() content.TestimonialInput {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	return content.TestimonialInput{
		Author:   p.Author,
		Quote:    p.Quote,
		Rating:   p.Rating,
		IsActive: isActive,
	}
}

type blogRequest struct {
	Title    string  `json:"title" validate:"required"`
	Body     string  `json:"body" validate:"required"`
	CoverURL *string `json:"cover_url,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (p blogRequest) toInput() content.BlogInput {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	return content.BlogInput{
		Title:    p.Title,
		Body:     p.Body,
		CoverURL: p.CoverURL,
		IsActive: isActive,
	}
}

// AdminCreateBanner creates a storefront banner.
func AdminCreateBanner(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.CreateBanner(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, dto)
	}
}

// AdminListBanners returns every banner including inactive ones.
func AdminListBanners(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListBanners(r.Context(), false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetBanner loads one banner.
func AdminGetBanner(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "banner id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetBanner(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminUpdateBanner applies a full replace.
func AdminUpdateBanner(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "banner id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload bannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.UpdateBanner(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminDeleteBanner removes one banner.
func AdminDeleteBanner(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "banner id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteBanner(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// PublicListBanners is the storefront banner strip: active only.
func PublicListBanners(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListBanners(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminCreateTestimonial records a customer quote.
func AdminCreateTestimonial(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload testimonialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.CreateTestimonial(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, dto)
	}
}

// AdminListTestimonials returns every testimonial.
func AdminListTestimonials(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListTestimonials(r.Context(), false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetTestimonial loads one testimonial.
func AdminGetTestimonial(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "testimonial id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetTestimonial(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminUpdateTestimonial applies a full replace.
func AdminUpdateTestimonial(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "testimonial id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload testimonialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.UpdateTestimonial(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminDeleteTestimonial removes one testimonial.
func AdminDeleteTestimonial(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "testimonial id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteTestimonial(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// PublicListTestimonials is the storefront quote wall: active only.
func PublicListTestimonials(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListTestimonials(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminCreateBlog publishes a blog post with a derived slug.
func AdminCreateBlog(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload blogRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.CreateBlog(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, dto)
	}
}

// AdminListBlogs returns every blog post including drafts.
func AdminListBlogs(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListBlogs(r.Context(), false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetBlog loads one blog post.
func AdminGetBlog(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "blog id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetBlog(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminUpdateBlog applies a full replace; the slug never changes.
func AdminUpdateBlog(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "blog id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload blogRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.UpdateBlog(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminDeleteBlog removes one blog post.
func AdminDeleteBlog(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "blog id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteBlog(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// PublicListBlogs is the storefront blog index: active only.
func PublicListBlogs(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListBlogs(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// PublicGetBlog is the storefront blog detail page keyed by slug.
func PublicGetBlog(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing blog slug"))
			return
		}
		dto, err := svc.GetBlogBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
