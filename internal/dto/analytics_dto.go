package dto

import "github.com/shopspring/decimal"

// ProductStat is one leaderboard row: delivered-order totals for a product.
type ProductStat struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
	Sold      int             `json:"sold"`
	Profit    decimal.Decimal `json:"profit"`
}

// StatusBucket is one slice of the status distribution chart series.
type StatusBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatusCounts exposes the raw counts of all four buckets, including zeros.
// The chart series in AnalyticsResponse omits zero buckets; consumers that
// need the raw numbers read these.
type StatusCounts struct {
	Delivered  int `json:"delivered"`
	Returned   int `json:"returned"`
	Cancelled  int `json:"cancelled"`
	InProgress int `json:"in_progress"`
}

// AnalyticsResponse is the order-collection aggregate, recomputed per call.
type AnalyticsResponse struct {
	TotalOrders    int            `json:"total_orders"`
	SuccessRate    float64        `json:"success_rate"` // percent, 0..100
	ReturnRate     float64        `json:"return_rate"`  // percent, 0..100
	TotalItemsSold int            `json:"total_items_sold"`
	Leaderboard    []ProductStat  `json:"leaderboard"`
	StatusCounts   StatusCounts   `json:"status_counts"`
	StatusSeries   []StatusBucket `json:"status_series"` // zero buckets omitted
}

// DailyStat is one point of the delivered-order time series, keyed by the
// business date of the order.
type DailyStat struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	Revenue    decimal.Decimal `json:"revenue"`
	Profit     decimal.Decimal `json:"profit"`
	OrderCount int             `json:"order_count"`
}

// FinanceResponse is the money view over orders + transaction log.
type FinanceResponse struct {
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingProfit decimal.Decimal `json:"pending_profit"`
	Daily         []DailyStat     `json:"daily"`
}
