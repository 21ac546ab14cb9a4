package tests

import (
	"context"
	"testing"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Rates and counts ─────────────────────────────────────────────────────────

func TestBuildAnalytics_Rates(t *testing.T) {
	orderRepo := newStubOrderRepo()
	// 10 orders: 6 delivered, 2 returned, 2 pending
	for i := 0; i < 6; i++ {
		seedOrder(orderRepo, model.OrderStatusDelivered, 100_000, 20_000, 1, "2026-08-01")
	}
	for i := 0; i < 2; i++ {
		seedOrder(orderRepo, model.OrderStatusReturned, 100_000, 20_000, 1, "2026-08-01")
	}
	for i := 0; i < 2; i++ {
		seedOrder(orderRepo, model.OrderStatusPending, 100_000, 20_000, 1, "2026-08-01")
	}

	orders, _ := orderRepo.ListAll(context.Background())
	resp := service.BuildAnalytics(orders)

	assert.Equal(t, 10, resp.TotalOrders)
	assert.InDelta(t, 60.0, resp.SuccessRate, 0.001)
	assert.InDelta(t, 20.0, resp.ReturnRate, 0.001)
	assert.Equal(t, 6, resp.TotalItemsSold)
}

func TestBuildAnalytics_EmptyCollection(t *testing.T) {
	resp := service.BuildAnalytics(nil)
	assert.Equal(t, 0, resp.TotalOrders)
	assert.Zero(t, resp.SuccessRate)
	assert.Zero(t, resp.ReturnRate)
	assert.Equal(t, 0, resp.TotalItemsSold)
	assert.Empty(t, resp.Leaderboard)
	assert.Empty(t, resp.StatusSeries)
}

func TestBuildAnalytics_OnlyDeliveredCountItemsSold(t *testing.T) {
	orders := []model.Order{
		{Status: model.OrderStatusDelivered, Quantity: 3, ProductID: uuid.New(), RetailPrice: decimal.NewFromInt(100)},
		{Status: model.OrderStatusShipping, Quantity: 5, ProductID: uuid.New(), RetailPrice: decimal.NewFromInt(100)},
		{Status: model.OrderStatusReturned, Quantity: 7, ProductID: uuid.New(), RetailPrice: decimal.NewFromInt(100)},
	}
	resp := service.BuildAnalytics(orders)
	assert.Equal(t, 3, resp.TotalItemsSold)
}

// ── Status distribution ──────────────────────────────────────────────────────

func TestBuildAnalytics_StatusBuckets(t *testing.T) {
	orders := []model.Order{
		{Status: model.OrderStatusDelivered, ProductID: uuid.New()},
		{Status: model.OrderStatusDelivered, ProductID: uuid.New()},
		{Status: model.OrderStatusCancelled, ProductID: uuid.New()},
		{Status: model.OrderStatusCancelledByCustomer, ProductID: uuid.New()},
		{Status: model.OrderStatusPending, ProductID: uuid.New()},
		{Status: model.OrderStatusShipping, ProductID: uuid.New()},
		{Status: model.OrderStatusSentToSupplier, ProductID: uuid.New()},
	}
	resp := service.BuildAnalytics(orders)

	// Raw counts keep all four buckets, including zeros.
	assert.Equal(t, 2, resp.StatusCounts.Delivered)
	assert.Equal(t, 0, resp.StatusCounts.Returned)
	assert.Equal(t, 2, resp.StatusCounts.Cancelled) // both cancellation variants
	assert.Equal(t, 3, resp.StatusCounts.InProgress)

	// The chart series omits the zero bucket.
	names := make([]string, 0, len(resp.StatusSeries))
	for _, b := range resp.StatusSeries {
		names = append(names, b.Name)
	}
	assert.ElementsMatch(t, []string{"delivered", "cancelled", "in_progress"}, names)
}

// ── Leaderboard ──────────────────────────────────────────────────────────────

func TestBuildAnalytics_LeaderboardTopFiveByRevenue(t *testing.T) {
	orders := make([]model.Order, 0, 7)
	// 7 products, revenue 100..700
	for i := 1; i <= 7; i++ {
		orders = append(orders, model.Order{
			Status:      model.OrderStatusDelivered,
			ProductID:   uuid.New(),
			ProductName: "p",
			Quantity:    1,
			RetailPrice: decimal.NewFromInt(int64(i * 100)),
		})
	}
	resp := service.BuildAnalytics(orders)

	require.Len(t, resp.Leaderboard, 5)
	assert.Equal(t, "700", resp.Leaderboard[0].Revenue.String())
	assert.Equal(t, "300", resp.Leaderboard[4].Revenue.String())
}

func TestBuildAnalytics_LeaderboardStableTies(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	orders := []model.Order{
		{Status: model.OrderStatusDelivered, ProductID: a, ProductName: "first seen", Quantity: 1, RetailPrice: decimal.NewFromInt(500)},
		{Status: model.OrderStatusDelivered, ProductID: b, ProductName: "second seen", Quantity: 1, RetailPrice: decimal.NewFromInt(500)},
	}
	resp := service.BuildAnalytics(orders)

	require.Len(t, resp.Leaderboard, 2)
	assert.Equal(t, "first seen", resp.Leaderboard[0].Name)
	assert.Equal(t, "second seen", resp.Leaderboard[1].Name)
}

func TestBuildAnalytics_LeaderboardAggregatesPerProduct(t *testing.T) {
	pid := uuid.New()
	orders := []model.Order{
		{Status: model.OrderStatusDelivered, ProductID: pid, ProductName: "jacket", Quantity: 2, RetailPrice: decimal.NewFromInt(100_000), TotalProfit: decimal.NewFromInt(40_000)},
		{Status: model.OrderStatusDelivered, ProductID: pid, ProductName: "jacket", Quantity: 1, RetailPrice: decimal.NewFromInt(100_000), TotalProfit: decimal.NewFromInt(20_000)},
		{Status: model.OrderStatusReturned, ProductID: pid, ProductName: "jacket", Quantity: 9, RetailPrice: decimal.NewFromInt(100_000)},
	}
	resp := service.BuildAnalytics(orders)

	require.Len(t, resp.Leaderboard, 1)
	assert.Equal(t, "300000", resp.Leaderboard[0].Revenue.String())
	assert.Equal(t, 3, resp.Leaderboard[0].Sold)
	assert.Equal(t, "60000", resp.Leaderboard[0].Profit.String())
}

// ── Finance ──────────────────────────────────────────────────────────────────

func TestBuildFinance_DailySeriesSortedByDate(t *testing.T) {
	orderRepo := newStubOrderRepo()
	seedOrder(orderRepo, model.OrderStatusDelivered, 200_000, 50_000, 1, "2026-08-03")
	seedOrder(orderRepo, model.OrderStatusDelivered, 100_000, 30_000, 2, "2026-08-01")
	seedOrder(orderRepo, model.OrderStatusDelivered, 150_000, 40_000, 1, "2026-08-01")
	seedOrder(orderRepo, model.OrderStatusShipping, 999_999, 999, 1, "2026-08-02") // not delivered, ignored

	orders, _ := orderRepo.ListAll(context.Background())
	resp := service.BuildFinance(orders, nil)

	require.Len(t, resp.Daily, 2)
	assert.Equal(t, "2026-08-01", resp.Daily[0].Date)
	assert.Equal(t, "350000", resp.Daily[0].Revenue.String()) // 100000*2 + 150000
	assert.Equal(t, "70000", resp.Daily[0].Profit.String())
	assert.Equal(t, 2, resp.Daily[0].OrderCount)
	assert.Equal(t, "2026-08-03", resp.Daily[1].Date)
	assert.Equal(t, "550000", resp.TotalRevenue.String())
}

func TestBuildFinance_WalletAndPendingProfit(t *testing.T) {
	orders := []model.Order{
		{Status: model.OrderStatusDelivered, ProductID: uuid.New(), Quantity: 1, RetailPrice: decimal.NewFromInt(2_000_000), TotalProfit: decimal.NewFromInt(1_300_000)},
		{Status: model.OrderStatusShipping, ProductID: uuid.New(), Quantity: 1, RetailPrice: decimal.NewFromInt(1_000_000), TotalProfit: decimal.NewFromInt(500_000)},
	}
	txns := []model.Transaction{
		{Type: model.TransactionTypeCommission, Status: model.TransactionStatusCompleted, Amount: decimal.NewFromInt(1_300_000)},
	}
	resp := service.BuildFinance(orders, txns)

	assert.Equal(t, "1300000", resp.WalletBalance.String())
	assert.Equal(t, "500000", resp.PendingProfit.String())
	assert.Equal(t, "2000000", resp.TotalRevenue.String())
}
