package wholesaler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

// Service exposes supplier bookkeeping operations.
type Service interface {
	Create(ctx context.Context, input Input) (*WholesalerDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*WholesalerDTO, error)
	List(ctx context.Context) ([]WholesalerDTO, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*WholesalerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input holds the supplier fields for create and update.
type Input struct {
	Name      string
	Area      string
	City      string
	Email     *string
	Phone     *string
	Pincode   *string
	GSTNumber *string
}

type repository interface {
	Create(ctx context.Context, row *models.Wholesaler) (*models.Wholesaler, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Wholesaler, error)
	List(ctx context.Context) ([]models.Wholesaler, error)
	Update(ctx context.Context, row *models.Wholesaler) (*models.Wholesaler, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a wholesaler service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wholesaler repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*WholesalerDTO, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	row := &models.Wholesaler{}
	applyInput(row, input)

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert wholesaler")
	}
	return NewWholesalerDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*WholesalerDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Wholesaler not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load wholesaler")
	}
	return NewWholesalerDTO(row), nil
}

func (s *service) List(ctx context.Context) ([]WholesalerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list wholesalers")
	}
	return NewWholesalerDTOs(rows), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*WholesalerDTO, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Wholesaler not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load wholesaler")
	}
	applyInput(row, input)

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update wholesaler")
	}
	return NewWholesalerDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Wholesaler not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load wholesaler")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete wholesaler")
	}
	return nil
}

func applyInput(row *models.Wholesaler, input Input) {
	row.Name = strings.TrimSpace(input.Name)
	row.Area = strings.TrimSpace(input.Area)
	row.City = strings.TrimSpace(input.City)
	row.Email = trimOptional(input.Email)
	row.Phone = trimOptional(input.Phone)
	row.Pincode = trimOptional(input.Pincode)
	row.GSTNumber = trimOptional(input.GSTNumber)
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
