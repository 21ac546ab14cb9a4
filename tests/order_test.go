package tests

import (
	"context"
	"testing"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrderSvc() (service.OrderService, *stubOrderRepo, *stubProductRepo, *stubTransactionRepo) {
	orderRepo := newStubOrderRepo()
	productRepo := newStubProductRepo()
	txnRepo := newStubTransactionRepo()
	svc := service.NewOrderService(orderRepo, productRepo, txnRepo)
	return svc, orderRepo, productRepo, txnRepo
}

// ── Financial derivation ─────────────────────────────────────────────────────

func TestDeriveOrderFinancials(t *testing.T) {
	// dealer 1,200,000 / retail 1,950,000 / qty 1 / deposit 0 / shipping 30,000
	fin := service.DeriveOrderFinancials(
		decimal.NewFromInt(1_200_000), decimal.NewFromInt(1_950_000),
		1, decimal.Zero, decimal.NewFromInt(30_000), false)
	assert.Equal(t, "750000", fin.TotalProfit.String())
	assert.Equal(t, "1980000", fin.TotalToCollect.String())
}

func TestDeriveOrderFinancials_FreeShipOverridesFee(t *testing.T) {
	fin := service.DeriveOrderFinancials(
		decimal.NewFromInt(100_000), decimal.NewFromInt(150_000),
		2, decimal.NewFromInt(50_000), decimal.NewFromInt(30_000), true)
	// shipping forced to zero: 150000*2 + 0 - 50000
	assert.Equal(t, "250000", fin.TotalToCollect.String())
	assert.Equal(t, "100000", fin.TotalProfit.String())
}

func TestDeriveOrderFinancials_NegativeCollectNotClamped(t *testing.T) {
	// deposit exceeds goods value
	fin := service.DeriveOrderFinancials(
		decimal.NewFromInt(80_000), decimal.NewFromInt(100_000),
		1, decimal.NewFromInt(150_000), decimal.Zero, false)
	assert.Equal(t, "-50000", fin.TotalToCollect.String())
}

func TestDeriveOrderFinancials_ZeroMarginAllowed(t *testing.T) {
	fin := service.DeriveOrderFinancials(
		decimal.NewFromInt(100_000), decimal.NewFromInt(100_000),
		3, decimal.Zero, decimal.Zero, false)
	assert.True(t, fin.TotalProfit.IsZero())
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateOrder_SnapshotsPrices(t *testing.T) {
	svc, orderRepo, productRepo, _ := buildOrderSvc()
	p := seedProduct(productRepo, "Áo khoác gió", 1_200_000, 1_950_000)

	resp, err := svc.Create(context.Background(), nil, dto.CreateOrderRequest{
		ProductID:    p.ID.String(),
		Quantity:     1,
		ShippingFee:  decimal.NewFromInt(30_000),
		CustomerName: "Nguyen Van A",
		StaffName:    "Tran Thi B",
	})
	require.NoError(t, err)
	assert.Equal(t, "750000", resp.TotalProfit.String())
	assert.Equal(t, "1980000", resp.TotalToCollect.String())
	assert.Equal(t, model.OrderStatusPending, resp.Status)

	// Editing the product afterwards must not change the stored order.
	p.RetailPrice = decimal.NewFromInt(9_999_999)
	stored, err := orderRepo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "1950000", stored.RetailPrice.String())
	assert.Equal(t, "750000", stored.TotalProfit.String())
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	svc, _, _, _ := buildOrderSvc()
	_, err := svc.Create(context.Background(), nil, dto.CreateOrderRequest{
		ProductID:    uuid.New().String(),
		Quantity:     1,
		CustomerName: "Nguyen Van A",
	})
	assert.True(t, apierror.IsNotFound(err))
}

// ── Status transitions ───────────────────────────────────────────────────────

func deliverOrder(t *testing.T, svc service.OrderService, id uuid.UUID) *dto.StatusChangeResponse {
	t.Helper()
	resp, err := svc.TransitionStatus(context.Background(), id, model.OrderStatusDelivered)
	require.NoError(t, err)
	return resp
}

func TestTransitionStatus_DeliveredPostsCommission(t *testing.T) {
	svc, orderRepo, _, txnRepo := buildOrderSvc()
	o := seedOrder(orderRepo, model.OrderStatusShipping, 1_950_000, 750_000, 1, "2026-08-01")

	resp := deliverOrder(t, svc, o.ID)

	require.NotNil(t, resp.EmittedCommission)
	assert.Equal(t, model.TransactionTypeCommission, resp.EmittedCommission.Type)
	assert.Equal(t, model.TransactionStatusCompleted, resp.EmittedCommission.Status)
	assert.Equal(t, "750000", resp.EmittedCommission.Amount.String())
	require.NotNil(t, resp.EmittedCommission.OrderID)
	assert.Equal(t, o.ID.String(), *resp.EmittedCommission.OrderID)

	txns, _ := txnRepo.ListAll(context.Background())
	assert.Len(t, txns, 1)
}

func TestTransitionStatus_RepeatDeliveryIsNoOp(t *testing.T) {
	svc, orderRepo, _, txnRepo := buildOrderSvc()
	o := seedOrder(orderRepo, model.OrderStatusShipping, 1_950_000, 750_000, 1, "2026-08-01")

	first := deliverOrder(t, svc, o.ID)
	second := deliverOrder(t, svc, o.ID)

	assert.NotNil(t, first.EmittedCommission)
	assert.Nil(t, second.EmittedCommission)

	txns, _ := txnRepo.ListAll(context.Background())
	assert.Len(t, txns, 1)
}

func TestTransitionStatus_AwayAndBackStillOnce(t *testing.T) {
	svc, orderRepo, _, txnRepo := buildOrderSvc()
	o := seedOrder(orderRepo, model.OrderStatusShipping, 1_950_000, 750_000, 1, "2026-08-01")

	deliverOrder(t, svc, o.ID)

	// Correct away to RETURNED, then back to DELIVERED: the commission must
	// not be posted a second time.
	_, err := svc.TransitionStatus(context.Background(), o.ID, model.OrderStatusReturned)
	require.NoError(t, err)
	back := deliverOrder(t, svc, o.ID)

	assert.Nil(t, back.EmittedCommission)
	txns, _ := txnRepo.ListAll(context.Background())
	assert.Len(t, txns, 1)
}

func TestTransitionStatus_NonDeliveredEmitsNothing(t *testing.T) {
	svc, orderRepo, _, txnRepo := buildOrderSvc()
	o := seedOrder(orderRepo, model.OrderStatusPending, 1_950_000, 750_000, 1, "2026-08-01")

	resp, err := svc.TransitionStatus(context.Background(), o.ID, model.OrderStatusShipping)
	require.NoError(t, err)
	assert.Nil(t, resp.EmittedCommission)
	assert.Equal(t, model.OrderStatusShipping, resp.Order.Status)

	txns, _ := txnRepo.ListAll(context.Background())
	assert.Empty(t, txns)
}

func TestTransitionStatus_UnknownStatusRejected(t *testing.T) {
	svc, orderRepo, _, _ := buildOrderSvc()
	o := seedOrder(orderRepo, model.OrderStatusPending, 1_950_000, 750_000, 1, "2026-08-01")

	_, err := svc.TransitionStatus(context.Background(), o.ID, "LOST_IN_TRANSIT")
	assert.True(t, apierror.IsValidation(err))

	stored, _ := orderRepo.FindByID(context.Background(), o.ID)
	assert.Equal(t, model.OrderStatusPending, stored.Status)
}

func TestTransitionStatus_UnknownOrder(t *testing.T) {
	svc, _, _, _ := buildOrderSvc()
	_, err := svc.TransitionStatus(context.Background(), uuid.New(), model.OrderStatusDelivered)
	assert.True(t, apierror.IsNotFound(err))
}

func TestToggleSupplierConfirmation(t *testing.T) {
	svc, orderRepo, _, _ := buildOrderSvc()
	o := seedOrder(orderRepo, model.OrderStatusPending, 1_950_000, 750_000, 1, "2026-08-01")

	resp, err := svc.ToggleSupplierConfirmation(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsSupplierConfirmed)

	resp, err = svc.ToggleSupplierConfirmation(context.Background(), o.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsSupplierConfirmed)
}
