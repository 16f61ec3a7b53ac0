package variant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	dbtypes "github.com/rkhatri/vastra-backend/pkg/db/types"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

// Service manages garment variants across all six kinds through one surface.
// The kind always comes from the route, never from the request body.
type Service interface {
	Create(ctx context.Context, kind enums.VariantKind, input CreateInput) (*VariantDTO, error)
	Get(ctx context.Context, kind enums.VariantKind, id uuid.UUID) (*VariantDTO, error)
	List(ctx context.Context, kind enums.VariantKind, parentID *uuid.UUID) ([]VariantDTO, error)
	Update(ctx context.Context, kind enums.VariantKind, id uuid.UUID, input UpdateInput) (*VariantDTO, error)
	Delete(ctx context.Context, kind enums.VariantKind, id uuid.UUID) error
}

// CreateInput holds the validated payload to create a variant.
type CreateInput struct {
	ParentProductID *uuid.UUID
	WholesalerID    uuid.UUID
	Name            string
	Fabric          string
	Work            string
	Sizes           []string
	Manufacturer    string
	Quantity        int
	PurchasePrice   *float64
	Attributes      map[string]any
}

// UpdateInput is a whitelist patch: nil fields are left unchanged. Every kind
// accepts the same field set, including the attribute bag.
type UpdateInput struct {
	ParentProductID *uuid.UUID
	WholesalerID    *uuid.UUID
	Name            *string
	Fabric          *string
	Work            *string
	Sizes           *[]string
	Manufacturer    *string
	Quantity        *int
	PurchasePrice   *float64
	Attributes      *map[string]any
}

type productChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type repository interface {
	Create(ctx context.Context, row *models.GarmentVariant) (*models.GarmentVariant, error)
	FindByID(ctx context.Context, kind enums.VariantKind, id uuid.UUID) (*models.GarmentVariant, error)
	List(ctx context.Context, kind enums.VariantKind, parentID *uuid.UUID) ([]models.GarmentVariant, error)
	Update(ctx context.Context, row *models.GarmentVariant) (*models.GarmentVariant, error)
	Delete(ctx context.Context, kind enums.VariantKind, id uuid.UUID) error
}

type service struct {
	repo     repository
	products productChecker
}

// NewService constructs a variant service instance.
func NewService(repo repository, products productChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("variant repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product checker required")
	}
	return &service{repo: repo, products: products}, nil
}

func (s *service) Create(ctx context.Context, kind enums.VariantKind, input CreateInput) (*VariantDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Unknown variant kind")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	if input.WholesalerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Wholesaler is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Quantity cannot be negative")
	}
	if err := s.ensureParentExists(ctx, input.ParentProductID); err != nil {
		return nil, err
	}

	row := &models.GarmentVariant{
		Kind:            kind,
		ParentProductID: input.ParentProductID,
		WholesalerID:    input.WholesalerID,
		Name:            strings.TrimSpace(input.Name),
		Fabric:          strings.TrimSpace(input.Fabric),
		Work:            strings.TrimSpace(input.Work),
		Sizes:           append([]string{}, input.Sizes...),
		Manufacturer:    strings.TrimSpace(input.Manufacturer),
		Quantity:        input.Quantity,
		PurchasePrice:   input.PurchasePrice,
		Attributes:      dbtypes.JSONMap(input.Attributes),
	}
	if row.Attributes == nil {
		row.Attributes = dbtypes.JSONMap{}
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert variant")
	}
	return s.Get(ctx, kind, created.ID)
}

func (s *service) Get(ctx context.Context, kind enums.VariantKind, id uuid.UUID) (*VariantDTO, error) {
	row, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}
	return NewVariantDTO(row), nil
}

func (s *service) List(ctx context.Context, kind enums.VariantKind, parentID *uuid.UUID) ([]VariantDTO, error) {
	rows, err := s.repo.List(ctx, kind, parentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list variants")
	}
	return NewVariantDTOs(rows), nil
}

func (s *service) Update(ctx context.Context, kind enums.VariantKind, id uuid.UUID, input UpdateInput) (*VariantDTO, error) {
	row, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}

	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Quantity cannot be negative")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	if input.WholesalerID != nil && *input.WholesalerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Wholesaler is required")
	}
	if input.ParentProductID != nil {
		if err := s.ensureParentExists(ctx, input.ParentProductID); err != nil {
			return nil, err
		}
	}

	applyUpdate(row, input)

	if _, err := s.repo.Update(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update variant")
	}
	return s.Get(ctx, kind, id)
}

func (s *service) Delete(ctx context.Context, kind enums.VariantKind, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, kind, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Variant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete variant")
	}
	return nil
}

// ensureParentExists checks that a provided parent reference points at a live
// product. Existing rows can go stale later when the product is deleted; that
// is accepted and reads render the gap as null.
func (s *service) ensureParentExists(ctx context.Context, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	ok, err := s.products.Exists(ctx, *parentID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check parent product")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "Parent product does not exist")
	}
	return nil
}

func applyUpdate(row *models.GarmentVariant, input UpdateInput) {
	if input.ParentProductID != nil {
		row.ParentProductID = input.ParentProductID
	}
	if input.WholesalerID != nil {
		row.WholesalerID = *input.WholesalerID
	}
	if input.Name != nil {
		row.Name = strings.TrimSpace(*input.Name)
	}
	if input.Fabric != nil {
		row.Fabric = strings.TrimSpace(*input.Fabric)
	}
	if input.Work != nil {
		row.Work = strings.TrimSpace(*input.Work)
	}
	if input.Sizes != nil {
		row.Sizes = append([]string{}, (*input.Sizes)...)
	}
	if input.Manufacturer != nil {
		row.Manufacturer = strings.TrimSpace(*input.Manufacturer)
	}
	if input.Quantity != nil {
		row.Quantity = *input.Quantity
	}
	if input.PurchasePrice != nil {
		row.PurchasePrice = input.PurchasePrice
	}
	if input.Attributes != nil {
		attrs := *input.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		row.Attributes = dbtypes.JSONMap(attrs)
	}
}
