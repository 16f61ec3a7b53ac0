package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rkhatri/vastra-backend/api/responses"
	"github.com/rkhatri/vastra-backend/api/validators"
	wholesaler "github.com/rkhatri/vastra-backend/internal/wholesalers"
	"github.com/rkhatri/vastra-backend/pkg/logger"
)

// Supplier-side validation (required name/area/city, email and pincode
// formats) lives in the service, so the request carries no validate tags.
type wholesalerRequest struct {
	Name      string  `json:"name"`
	Area      string  `json:"area"`
	City      string  `json:"city"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Pincode   *string `json:"pincode,omitempty"`
	GSTNumber *string `json:"gst_number,omitempty"`
}

func (p wholesalerRequest) toInput() wholesaler.Input {
	return wholesaler.Input{
		Name:      p.Name,
		Area:      p.Area,
		City:      p.City,
		Email:     p.Email,
		Phone:     p.Phone,
		Pincode:   p.Pincode,
		GSTNumber: p.GSTNumber,
	}
}

// AdminCreateWholesaler registers a supplier.
func AdminCreateWholesaler(svc wholesaler.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload wholesalerRequest
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

// AdminListWholesalers returns every supplier.
func AdminListWholesalers(svc wholesaler.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetWholesaler loads one supplier.
func AdminGetWholesaler(svc wholesaler.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "wholesaler id")
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

// AdminUpdateWholesaler applies a full replace.
func AdminUpdateWholesaler(svc wholesaler.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "wholesaler id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload wholesalerRequest
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

// AdminDeleteWholesaler removes one supplier.
func AdminDeleteWholesaler(svc wholesaler.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "wholesaler id")
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
