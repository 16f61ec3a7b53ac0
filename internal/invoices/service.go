package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

var (
	defaultGSTPercentage = decimal.NewFromInt(18)
	hundred              = decimal.NewFromInt(100)
)

// Service exposes purchase invoice bookkeeping.
type Service interface {
	Create(ctx context.Context, input Input) (*InvoiceDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*InvoiceDTO, error)
	List(ctx context.Context, wholesalerID *uuid.UUID) ([]InvoiceDTO, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*InvoiceDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input holds the invoice fields for create and update. TotalAmount is not
// accepted from clients; it is always derived.
type Input struct {
	WholesalerID  uuid.UUID
	InvoiceNumber string
	InvoiceDate   *time.Time
	GrossAmount   decimal.Decimal
	GSTPercentage *decimal.Decimal
	OtherCost     *decimal.Decimal
	Discount      *decimal.Decimal
	Notes         *string
}

type repository interface {
	Create(ctx context.Context, row *models.Invoice) (*models.Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, wholesalerID *uuid.UUID) ([]models.Invoice, error)
	Update(ctx context.Context, row *models.Invoice) (*models.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs an invoice service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invoice repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*InvoiceDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row := &models.Invoice{}
	applyInput(row, input)

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert invoice")
	}
	return s.Get(ctx, created.ID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*InvoiceDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Invoice not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load invoice")
	}
	return NewInvoiceDTO(row), nil
}

func (s *service) List(ctx context.Context, wholesalerID *uuid.UUID) ([]InvoiceDTO, error) {
	rows, err := s.repo.List(ctx, wholesalerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list invoices")
	}
	return NewInvoiceDTOs(rows), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*InvoiceDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Invoice not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load invoice")
	}
	applyInput(row, input)

	if _, err := s.repo.Update(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update invoice")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Invoice not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load invoice")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete invoice")
	}
	return nil
}

func validateInput(input Input) error {
	if input.WholesalerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Wholesaler is required")
	}
	if input.GrossAmount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "Gross amount cannot be negative")
	}
	if input.GSTPercentage != nil && input.GSTPercentage.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "GST percentage cannot be negative")
	}
	return nil
}

// applyInput copies the input onto the row and derives total_amount. The
// derivation runs unconditionally so a stale or forged client total never
// survives a save.
func applyInput(row *models.Invoice, input Input) {
	row.WholesalerID = input.WholesalerID
	row.InvoiceNumber = strings.TrimSpace(input.InvoiceNumber)
	row.InvoiceDate = input.InvoiceDate
	row.GrossAmount = input.GrossAmount
	row.GSTPercentage = valueOrDefault(input.GSTPercentage, defaultGSTPercentage)
	row.OtherCost = valueOrDefault(input.OtherCost, decimal.Zero)
	row.Discount = valueOrDefault(input.Discount, decimal.Zero)
	row.Notes = input.Notes
	row.TotalAmount = deriveTotal(row.GrossAmount, row.GSTPercentage, row.OtherCost, row.Discount)
}

func deriveTotal(gross, gstPct, other, discount decimal.Decimal) decimal.Decimal {
	gst := gross.Mul(gstPct).Div(hundred)
	return gross.Add(gst).Add(other).Sub(discount).Round(2)
}

func valueOrDefault(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v == nil {
		return fallback
	}
	return *v
}
