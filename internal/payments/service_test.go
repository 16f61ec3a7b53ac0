package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/razorpay"
)

type stubRepo struct {
	rows map[uuid.UUID]*models.PaymentOrder
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: map[uuid.UUID]*models.PaymentOrder{}}
}

func (s *stubRepo) Create(_ context.Context, row *models.PaymentOrder) (*models.PaymentOrder, error) {
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	clone := *row
	s.rows[row.ID] = &clone
	return row, nil
}

func (s *stubRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*models.PaymentOrder, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.PaymentOrder, error) {
	var out []models.PaymentOrder
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

type stubGateway struct {
	calls  []razorpay.OrderRequest
	fail   error
	nextID int
}

func (g *stubGateway) CreateOrder(_ context.Context, req razorpay.OrderRequest) (*razorpay.Order, error) {
	if g.fail != nil {
		return nil, g.fail
	}
	g.calls = append(g.calls, req)
	g.nextID++
	return &razorpay.Order{
		ID:       fmt.Sprintf("order_%03d", g.nextID),
		Amount:   req.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency: "INR",
		Status:   "created",
	}, nil
}

func (g *stubGateway) Currency() string { return "INR" }

func newTestService(t *testing.T) (*service, *stubRepo, *stubGateway) {
	t.Helper()
	repo := newStubRepo()
	gw := &stubGateway{}
	svc, err := NewService(repo, gw)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc.(*service), repo, gw
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestCreateOrderPersistsGatewayRecord(t *testing.T) {
	svc, repo, gw := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	dto, err := svc.CreateOrder(ctx, userID, CreateOrderInput{
		Amount:  decimal.RequireFromString("2499.50"),
		Receipt: "rcpt-42",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if dto.GatewayOrderID != "order_001" {
		t.Fatalf("unexpected gateway id %q", dto.GatewayOrderID)
	}
	if !dto.Amount.Equal(decimal.RequireFromString("2499.50")) {
		t.Fatalf("unexpected amount %s", dto.Amount)
	}
	if dto.Currency != "INR" {
		t.Fatalf("unexpected currency %q", dto.Currency)
	}
	if dto.Receipt == nil || *dto.Receipt != "rcpt-42" {
		t.Fatalf("unexpected receipt %v", dto.Receipt)
	}
	if dto.Status != "created" {
		t.Fatalf("unexpected status %q", dto.Status)
	}
	if len(gw.calls) != 1 {
		t.Fatalf("expected one gateway call, got %d", len(gw.calls))
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected one persisted row, got %d", len(repo.rows))
	}
}

func TestCreateOrderValidatesAmount(t *testing.T) {
	svc, repo, gw := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, uuid.New(), CreateOrderInput{Amount: decimal.Zero})
	expectCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.CreateOrder(ctx, uuid.New(), CreateOrderInput{Amount: decimal.NewFromInt(-10)})
	expectCode(t, err, pkgerrors.CodeValidation)

	if len(gw.calls) != 0 || len(repo.rows) != 0 {
		t.Fatal("invalid amounts must not reach the gateway or the database")
	}
}

func TestCreateOrderGatewayFailureLeavesNoRow(t *testing.T) {
	svc, repo, gw := newTestService(t)
	gw.fail = fmt.Errorf("gateway unavailable")

	_, err := svc.CreateOrder(context.Background(), uuid.New(), CreateOrderInput{
		Amount: decimal.NewFromInt(100),
	})
	expectCode(t, err, pkgerrors.CodeDependency)
	if len(repo.rows) != 0 {
		t.Fatal("expected no persisted row after gateway failure")
	}
}

func TestOrdersAreUserScoped(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	dto, err := svc.CreateOrder(ctx, owner, CreateOrderInput{Amount: decimal.NewFromInt(500)})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if _, err := svc.GetOrder(ctx, owner, dto.ID); err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	_, err = svc.GetOrder(ctx, other, dto.ID)
	expectCode(t, err, pkgerrors.CodeNotFound)

	mine, err := svc.ListOrders(ctx, owner)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected one order, got %d", len(mine))
	}
	theirs, err := svc.ListOrders(ctx, other)
	if err != nil {
		t.Fatalf("ListOrders other: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected no orders for other user, got %d", len(theirs))
	}
}
