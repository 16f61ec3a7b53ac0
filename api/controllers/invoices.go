package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkhatri/vastra-backend/api/responses"
	"github.com/rkhatri/vastra-backend/api/validators"
	invoice "github.com/rkhatri/vastra-backend/internal/invoices"
	"github.com/rkhatri/vastra-backend/pkg/logger"
)

// total_amount is never accepted from clients; the service derives it.
type invoiceRequest struct {
	WholesalerID  uuid.UUID        `json:"wholesaler_id" validate:"required"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time       `json:"invoice_date,omitempty"`
	GrossAmount   decimal.Decimal  `json:"gross_amount"`
	GSTPercentage *decimal.Decimal `json:"gst_percentage,omitempty"`
	OtherCost     *decimal.Decimal `json:"other_cost,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (p invoiceRequest) toInput() invoice.Input {
	return invoice.Input{
		WholesalerID:  p.WholesalerID,
		InvoiceNumber: p.InvoiceNumber,
		InvoiceDate:   p.InvoiceDate,
		GrossAmount:   p.GrossAmount,
		GSTPercentage: p.GSTPercentage,
		OtherCost:     p.OtherCost,
		Discount:      p.Discount,
		Notes:         p.Notes,
	}
}

// AdminCreateInvoice records a purchase invoice with a derived total.
func AdminCreateInvoice(svc invoice.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload invoiceRequest
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

// AdminListInvoices returns invoices, optionally filtered by wholesaler.
func AdminListInvoices(svc invoice.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wholesalerID, err := validators.ParseQueryUUID(r, "wholesaler")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dtos, err := svc.List(r.Context(), wholesalerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AdminGetInvoice loads one invoice with its wholesaler expanded.
func AdminGetInvoice(svc invoice.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "invoice id")
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

// AdminUpdateInvoice applies a full replace and recomputes the total.
func AdminUpdateInvoice(svc invoice.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "invoice id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload invoiceRequest
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

// AdminDeleteInvoice removes one invoice.
func AdminDeleteInvoice(svc invoice.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "invoice id")
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
