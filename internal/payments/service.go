package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/razorpay"
)

// Service creates gateway orders and exposes the user's order history.
type Service interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, userID, id uuid.UUID) (*OrderDTO, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
}

// CreateOrderInput carries the checkout amount in rupees.
type CreateOrderInput struct {
	Amount  decimal.Decimal
	Receipt string
}

type repository interface {
	Create(ctx context.Context, row *models.PaymentOrder) (*models.PaymentOrder, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.PaymentOrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentOrder, error)
}

type gateway interface {
	CreateOrder(ctx context.Context, req razorpay.OrderRequest) (*razorpay.Order, error)
	Currency() string
}

type service struct {
	repo    repository
	gateway gateway
}

// NewService constructs a payment service instance.
func NewService(repo repository, gw gateway) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if gw == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	return &service{repo: repo, gateway: gw}, nil
}

// CreateOrder registers the amount with the gateway first, then persists the
// durable record. A gateway order without a local row is recoverable; the
// reverse is not, so the write happens last.
func (s *service) CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*OrderDTO, error) {
	if !input.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Amount must be positive")
	}

	receipt := strings.TrimSpace(input.Receipt)
	gwOrder, err := s.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:  input.Amount,
		Receipt: receipt,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "gateway: create order")
	}

	row := &models.PaymentOrder{
		UserID:         userID,
		GatewayOrderID: gwOrder.ID,
		Amount:         input.Amount,
		Currency:       gwOrder.Currency,
		Status:         enums.PaymentOrderStatusCreated,
	}
	if receipt != "" {
		row.Receipt = &receipt
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert payment order")
	}
	return NewOrderDTO(created), nil
}

func (s *service) GetOrder(ctx context.Context, userID, id uuid.UUID) (*OrderDTO, error) {
	row, err := s.repo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load payment order")
	}
	return NewOrderDTO(row), nil
}

func (s *service) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list payment orders")
	}
	return NewOrderDTOs(rows), nil
}
