package service

import (
	"context"
	"sort"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/repository"

	"github.com/shopspring/decimal"
)

const leaderboardSize = 5

// AnalyticsService produces the dashboard aggregates. Everything is a pure
// fold over (orders, transactions), recomputed on every call — no cached
// state, so there is no invalidation problem, only recompute cost.
type AnalyticsService interface {
	Summary(ctx context.Context) (*dto.AnalyticsResponse, error)
	Finance(ctx context.Context) (*dto.FinanceResponse, error)
}

type analyticsService struct {
	orderRepo repository.OrderRepository
	txnRepo   repository.TransactionRepository
}

func NewAnalyticsService(orderRepo repository.OrderRepository, txnRepo repository.TransactionRepository) AnalyticsService {
	return &analyticsService{orderRepo: orderRepo, txnRepo: txnRepo}
}

func (s *analyticsService) Summary(ctx context.Context) (*dto.AnalyticsResponse, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := BuildAnalytics(orders)
	return &resp, nil
}

func (s *analyticsService) Finance(ctx context.Context) (*dto.FinanceResponse, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := BuildFinance(orders, txns)
	return &resp, nil
}

// ── Folds ────────────────────────────────────────────────────────────────────

// BuildAnalytics folds the order collection into the dashboard aggregate.
func BuildAnalytics(orders []model.Order) dto.AnalyticsResponse {
	var counts dto.StatusCounts
	totalItemsSold := 0

	// Leaderboard accumulation keyed by product id; insertion order is kept
	// so that equal revenues preserve first-seen position after the stable
	// sort below.
	type acc struct {
		stat dto.ProductStat
	}
	statIdx := make(map[string]int)
	stats := make([]acc, 0)

	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusDelivered:
			counts.Delivered++
		case model.OrderStatusReturned:
			counts.Returned++
		case model.OrderStatusCancelled, model.OrderStatusCancelledByCustomer:
			counts.Cancelled++
		default:
			counts.InProgress++
		}

		if o.Status != model.OrderStatusDelivered {
			continue
		}
		totalItemsSold += o.Quantity

		pid := o.ProductID.String()
		idx, ok := statIdx[pid]
		if !ok {
			idx = len(stats)
			statIdx[pid] = idx
			stats = append(stats, acc{stat: dto.ProductStat{
				ProductID: pid,
				Name:      o.ProductName,
				Revenue:   decimal.Zero,
				Profit:    decimal.Zero,
			}})
		}
		revenue := o.RetailPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
		stats[idx].stat.Revenue = stats[idx].stat.Revenue.Add(revenue)
		stats[idx].stat.Sold += o.Quantity
		stats[idx].stat.Profit = stats[idx].stat.Profit.Add(o.TotalProfit)
	}

	leaderboard := make([]dto.ProductStat, 0, len(stats))
	for _, a := range stats {
		leaderboard = append(leaderboard, a.stat)
	}
	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].Revenue.GreaterThan(leaderboard[j].Revenue)
	})
	if len(leaderboard) > leaderboardSize {
		leaderboard = leaderboard[:leaderboardSize]
	}

	totalOrders := len(orders)
	successRate, returnRate := 0.0, 0.0
	if totalOrders > 0 {
		successRate = float64(counts.Delivered) / float64(totalOrders) * 100
		returnRate = float64(counts.Returned) / float64(totalOrders) * 100
	}

	// The chart series omits zero buckets; the raw counts stay available in
	// StatusCounts for consumers that need all four.
	series := make([]dto.StatusBucket, 0, 4)
	for _, b := range []dto.StatusBucket{
		{Name: "delivered", Count: counts.Delivered},
		{Name: "returned", Count: counts.Returned},
		{Name: "cancelled", Count: counts.Cancelled},
		{Name: "in_progress", Count: counts.InProgress},
	} {
		if b.Count > 0 {
			series = append(series, b)
		}
	}

	return dto.AnalyticsResponse{
		TotalOrders:    totalOrders,
		SuccessRate:    successRate,
		ReturnRate:     returnRate,
		TotalItemsSold: totalItemsSold,
		Leaderboard:    leaderboard,
		StatusCounts:   counts,
		StatusSeries:   series,
	}
}

// BuildFinance folds orders + ledger into the money view. The daily series
// aggregates delivered orders by business date (orderDate), oldest first.
func BuildFinance(orders []model.Order, txns []model.Transaction) dto.FinanceResponse {
	totalRevenue := decimal.Zero
	dayIdx := make(map[string]int)
	daily := make([]dto.DailyStat, 0)

	for _, o := range orders {
		if o.Status != model.OrderStatusDelivered {
			continue
		}
		revenue := o.RetailPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
		totalRevenue = totalRevenue.Add(revenue)

		day := o.OrderDate.Format("2006-01-02")
		idx, ok := dayIdx[day]
		if !ok {
			idx = len(daily)
			dayIdx[day] = idx
			daily = append(daily, dto.DailyStat{Date: day, Revenue: decimal.Zero, Profit: decimal.Zero})
		}
		daily[idx].Revenue = daily[idx].Revenue.Add(revenue)
		daily[idx].Profit = daily[idx].Profit.Add(o.TotalProfit)
		daily[idx].OrderCount++
	}

	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return dto.FinanceResponse{
		WalletBalance: WalletBalanceOf(txns),
		TotalRevenue:  totalRevenue,
		PendingProfit: PendingProfitOf(orders),
		Daily:         daily,
	}
}
