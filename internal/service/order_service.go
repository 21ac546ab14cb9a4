package service

import (
	"context"
	"time"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	Create(ctx context.Context, staff *StaffIdentity, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
	// TransitionStatus sets the order status and returns the explicit result:
	// the updated order plus the commission the transition emitted, if any.
	TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string) (*dto.StatusChangeResponse, error)
	ToggleSupplierConfirmation(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
}

// StaffIdentity carries the acting user into order creation, filled from the
// JWT claims by the handler.
type StaffIdentity struct {
	UserID   uuid.UUID
	FullName string
}

type orderService struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	txnRepo     repository.TransactionRepository
}

func NewOrderService(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
) OrderService {
	return &orderService{repo: repo, productRepo: productRepo, txnRepo: txnRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Order economics ──────────────────────────────────────────────────────────

// OrderFinancials are the two derived money fields frozen onto an order at
// creation time.
type OrderFinancials struct {
	TotalProfit    decimal.Decimal
	TotalToCollect decimal.Decimal
}

// DeriveOrderFinancials computes the per-order money fields:
//
//	totalProfit    = (retail - dealer) * quantity
//	totalToCollect = retail*quantity + shippingFee - deposit
//
// The shipping fee is forced to zero when freeShip is set. totalToCollect may
// be negative when the deposit exceeds the goods value; it is not clamped.
// The margin may be zero or negative — profitability is not enforced.
func DeriveOrderFinancials(dealerPrice, retailPrice decimal.Decimal, quantity int, deposit, shippingFee decimal.Decimal, freeShip bool) OrderFinancials {
	if freeShip {
		shippingFee = decimal.Zero
	}
	qty := decimal.NewFromInt(int64(quantity))
	return OrderFinancials{
		TotalProfit:    retailPrice.Sub(dealerPrice).Mul(qty),
		TotalToCollect: retailPrice.Mul(qty).Add(shippingFee).Sub(deposit),
	}
}

// ── Create ───────────────────────────────────────────────────────────────────
// Snapshots the product name and both prices onto the order so that later
// catalog edits never change existing orders. Invalid numeric input is
// rejected at the HTTP boundary (validator tags); by the time we are here
// quantity >= 1 and deposit/shippingFee >= 0 hold.

func (s *orderService) Create(ctx context.Context, staff *StaffIdentity, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apierror.Validation("invalid product_id")
	}
	product, err := s.productRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, apierror.NotFound("product not found")
	}

	fin := DeriveOrderFinancials(product.DealerPrice, product.RetailPrice, req.Quantity, req.Deposit, req.ShippingFee, req.FreeShip)

	shippingFee := req.ShippingFee
	if req.FreeShip {
		shippingFee = decimal.Zero
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		if parsed, perr := time.Parse(time.RFC3339, req.OrderDate); perr == nil {
			orderDate = parsed
		}
	}

	staffName := req.StaffName
	var createdBy *uuid.UUID
	if staff != nil {
		if staffName == "" {
			staffName = staff.FullName
		}
		id := staff.UserID
		createdBy = &id
	}

	order := &model.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Quantity:        req.Quantity,
		DealerPrice:     product.DealerPrice,
		RetailPrice:     product.RetailPrice,
		Deposit:         req.Deposit,
		ShippingFee:     shippingFee,
		TotalProfit:     fin.TotalProfit,
		TotalToCollect:  fin.TotalToCollect,
		Status:          model.OrderStatusPending,
		StaffName:       staffName,
		CreatedByUserID: createdBy,
		Note:            req.Note,
		OrderDate:       orderDate,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

// ── TransitionStatus ─────────────────────────────────────────────────────────
// Any status may be set from any other — staff must be able to correct
// mistakes — but the DELIVERED side effect is exactly-once per order: the
// commission is posted only when no COMMISSION entry with this orderId exists
// yet. The check runs inside the same transaction as the status update, and a
// partial unique index on transactions(order_id) WHERE type='COMMISSION'
// backs it at the database level.

func (s *orderService) TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string) (*dto.StatusChangeResponse, error) {
	if !model.ValidOrderStatus(newStatus) {
		return nil, apierror.Validation("unknown order status: " + newStatus)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("order not found")
	}

	var emitted *model.Transaction
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatusTx(tx, id, newStatus); err != nil {
			return err
		}

		if newStatus != model.OrderStatusDelivered {
			return nil
		}

		exists, err := s.txnRepo.CommissionExistsForOrder(ctx, tx, id)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		orderID := order.ID
		emitted = &model.Transaction{
			Type:    model.TransactionTypeCommission,
			Amount:  order.TotalProfit,
			Status:  model.TransactionStatusCompleted,
			OrderID: &orderID,
		}
		return s.txnRepo.CreateTx(tx, emitted)
	})
	if txErr != nil {
		return nil, txErr
	}

	order.Status = newStatus
	resp := &dto.StatusChangeResponse{Order: *orderToResponse(order)}
	if emitted != nil {
		resp.EmittedCommission = transactionToResponse(emitted)
	}
	return resp, nil
}

// ── ToggleSupplierConfirmation ───────────────────────────────────────────────
// Independent flag flip. Valid in any status; no other side effect.

func (s *orderService) ToggleSupplierConfirmation(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("order not found")
	}
	confirmed := !order.IsSupplierConfirmed
	if err := s.repo.SetSupplierConfirmed(ctx, id, confirmed); err != nil {
		return nil, err
	}
	order.IsSupplierConfirmed = confirmed
	return orderToResponse(order), nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("order not found")
	}
	return orderToResponse(order), nil
}

// List returns a paginated list of orders, newest first.
func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *orderToResponse(&orders[i]))
	}
	return &dto.OrderListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                  o.ID.String(),
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		CustomerAddress:     o.CustomerAddress,
		ProductID:           o.ProductID.String(),
		ProductName:         o.ProductName,
		Quantity:            o.Quantity,
		DealerPrice:         o.DealerPrice,
		RetailPrice:         o.RetailPrice,
		Deposit:             o.Deposit,
		ShippingFee:         o.ShippingFee,
		TotalProfit:         o.TotalProfit,
		TotalToCollect:      o.TotalToCollect,
		Status:              o.Status,
		IsSupplierConfirmed: o.IsSupplierConfirmed,
		StaffName:           o.StaffName,
		Note:                o.Note,
		OrderDate:           o.OrderDate.Format(time.RFC3339),
		CreatedAt:           o.CreatedAt.Format(time.RFC3339),
	}
}
