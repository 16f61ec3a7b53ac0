package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db"
	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/slug"
)

var oneHundred = decimal.NewFromInt(100)

// Service exposes coupon management and the public redeem-time lookup.
type Service interface {
	Create(ctx context.Context, input Input) (*CouponDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CouponDTO, error)
	List(ctx context.Context) ([]CouponDTO, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*CouponDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetValidBySlug(ctx context.Context, slugValue string) (*CouponDTO, error)
}

// Input holds coupon fields for create and update. The slug derives from the
// code at creation and never changes afterwards.
type Input struct {
	Code        string
	Type        enums.CouponType
	Value       decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxDiscount *decimal.Decimal
	ExpiresAt   *time.Time
	IsActive    bool
}

type repository interface {
	Create(ctx context.Context, row *models.Coupon) (*models.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
	FindBySlug(ctx context.Context, slug string) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Update(ctx context.Context, row *models.Coupon) (*models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
	now  func() time.Time
}

// NewService constructs a coupon service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("coupon repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*CouponDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row := &models.Coupon{
		Slug: slug.Make(input.Code),
	}
	applyInput(row, input)

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "A coupon with this code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert coupon")
	}
	return NewCouponDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*CouponDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCouponDTO(row), nil
}

func (s *service) List(ctx context.Context) ([]CouponDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list coupons")
	}
	return NewCouponDTOs(rows), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*CouponDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	// slug intentionally untouched when the code changes
	applyInput(row, input)

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update coupon")
	}
	return NewCouponDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete coupon")
	}
	return nil
}

// GetValidBySlug is the storefront redeem-time lookup. Inactive or expired
// coupons are indistinguishable from missing ones.
func (s *service) GetValidBySlug(ctx context.Context, slugValue string) (*CouponDTO, error) {
	row, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Coupon not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load coupon by slug")
	}
	if !row.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Coupon not found")
	}
	if row.ExpiresAt != nil && row.ExpiresAt.Before(s.now()) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Coupon not found")
	}
	return NewCouponDTO(row), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Coupon not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load coupon")
	}
	return row, nil
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Code) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Code is required")
	}
	if !input.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "Unknown coupon type")
	}
	if !input.Value.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "Value must be positive")
	}
	if input.Type == enums.CouponTypePercentage && input.Value.GreaterThan(oneHundred) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Percentage value cannot exceed 100")
	}
	return nil
}

func applyInput(row *models.Coupon, input Input) {
	row.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	row.Type = input.Type
	row.Value = input.Value
	row.MinPurchase = input.MinPurchase
	row.MaxDiscount = input.MaxDiscount
	row.ExpiresAt = input.ExpiresAt
	row.IsActive = input.IsActive
}
