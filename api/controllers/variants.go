package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/api/responses"
	"github.com/rkhatri/vastra-backend/api/validators"
	variant "github.com/rkhatri/vastra-backend/internal/variants"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/logger"
)

// The variant kind always comes from the route segment; bodies never carry it.
func kindFromRoute(r *http.Request) (enums.VariantKind, error) {
	kind, err := enums.ParseVariantKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "Unknown variant kind")
	}
	return kind, nil
}

type createVariantRequest struct {
	ParentProductID *uuid.UUID     `json:"parent_product_id,omitempty"`
	WholesalerID    uuid.UUID      `json:"wholesaler_id" validate:"required"`
	Name            string         `json:"name" validate:"required"`
	Fabric          string         `json:"fabric,omitempty"`
	Work            string         `json:"work,omitempty"`
	Sizes           []string       `json:"sizes,omitempty"`
	Manufacturer    string         `json:"manufacturer,omitempty"`
	Quantity        int            `json:"quantity" validate:"gte=0"`
	PurchasePrice   *float64       `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	Attributes      map[string]any `json:"attributes,omitempty"`
}

func (p createVariantRequest) toInput() variant.CreateInput {
	return variant.CreateInput{
		ParentProductID: p.ParentProductID,
		WholesalerID:    p.WholesalerID,
		Name:            p.Name,
		Fabric:          p.Fabric,
		Work:            p.Work,
		Sizes:           p.Sizes,
		Manufacturer:    p.Manufacturer,
		Quantity:        p.Quantity,
		PurchasePrice:   p.PurchasePrice,
		Attributes:      p.Attributes,
	}
}

type updateVariantRequest struct {
	ParentProductID *uuid.UUID      `json:"parent_product_id,omitempty"`
	WholesalerID    *uuid.UUID      `json:"wholesaler_id,omitempty"`
	Name            *string         `json:"name,omitempty"`
	Fabric          *string         `json:"fabric,omitempty"`
	Work            *string         `json:"work,omitempty"`
	Sizes           *[]string       `json:"sizes,omitempty"`
	Manufacturer    *string         `json:"manufacturer,omitempty"`
	Quantity        *int            `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	PurchasePrice   *float64        `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	Attributes      *map[string]any `json:"attributes,omitempty"`
}

func (p updateVariantRequest) toInput() variant.UpdateInput {
	return variant.UpdateInput{
		ParentProductID: p.ParentProductID,
		WholesalerID:    p.WholesalerID,
		Name:            p.Name,
		Fabric:          p.Fabric,
		Work:            p.Work,
		Sizes:           p.Sizes,
		Manufacturer:    p.Manufacturer,
		Quantity:        p.Quantity,
		PurchasePrice:   p.PurchasePrice,
		Attributes:      p.Attributes,
	}
}

// AdminCreateVariant creates a variant of the kind named in the route.
func AdminCreateVariant(svc variant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload createVariantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Create(r.Context(), kind, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, dto)
	}
}

// AdminCreateVariantForProduct is the nested create: the parent product id
// comes from the route and overrides anything in the body.
func AdminCreateVariantForProduct(svc variant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		parentID, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload createVariantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input := payload.toInput()
		input.ParentProductID = &parentID
		dto, err := svc.Create(r.Context(), kind, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, dto)
	}
}

// AdminListVariants lists one kind, optionally filtered by parent product.
func AdminListVariants(svc variant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		parentID, err := validators.ParseQueryUUID(r, "product")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dtos, err := svc.List(r.Context(), kind, parentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetVariant loads one variant, scoped to the route kind.
func AdminGetVariant(svc variant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "variant id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Get(r.Context(), kind, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminUpdateVariant applies a whitelist patch.
func AdminUpdateVariant(svc variant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "variant id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateVariantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.Update(r.Context(), kind, id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AdminDeleteVariant removes one variant, scoped to the route kind.
func AdminDeleteVariant(svc variant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "variant id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), kind, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
