package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/api/responses"
	"github.com/rkhatri/vastra-backend/api/validators"
	coupon "github.com/rkhatri/vastra-backend/internal/coupons"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/logger"
)

// couponRequest carries the code verbatim; the service normalizes it and the
// slug derives from it on create only.
type couponRequest struct {
	Code        string           `json:"code" validate:"required"`
	Type        string           `json:"type" validate:"required"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase *decimal.Decimal `json:"min_purchase,omitempty"`
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (p couponRequest) toInput() coupon.Input {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	return coupon.Input{
		Code:        p.Code,
		Type:        enums.CouponType(p.Type),
		Value:       p.Value,
		MinPurchase: p.MinPurchase,
		MaxDiscount: p.MaxDiscount,
		ExpiresAt:   p.ExpiresAt,
		IsActive:    isActive,
	}
}

// AdminCreateCoupon registers a discount code.
func AdminCreateCoupon(svc coupon.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload couponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, dto)
	}
}

// AdminListCoupons returns every coupon including expired ones.
func AdminListCoupons(svc coupon.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetCoupon loads one coupon by ID.
func AdminGetCoupon(svc coupon.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "coupon id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminUpdateCoupon applies a full replace. The slug stays fixed even when
// the code changes.
func AdminUpdateCoupon(svc coupon.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "coupon id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload couponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminDeleteCoupon removes one coupon.
func AdminDeleteCoupon(svc coupon.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "coupon id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// PublicGetCoupon is the redeem-time lookup. Inactive and expired coupons are
// indistinguishable from missing ones.
func PublicGetCoupon(svc coupon.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugValue := chi.URLParam(r, "slug")
		if slugValue == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing coupon slug"))
			return
		}
		dto, err := svc.GetValidBySlug(r.Context(), slugValue)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
