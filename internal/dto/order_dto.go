package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// OrderFilter is bound from the query string of GET /v1/orders.
type OrderFilter struct {
	// Search matches the customer name (substring) or the exact order id.
	Search string `form:"search"`
	Status string `form:"status"` // one of the order statuses, or "ALL"/empty
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateOrderRequest rejects invalid numeric input at the boundary instead of
// silently coercing it: quantity must be >= 1, deposit and shipping fee >= 0.
// Omitted deposit/shipping fee default to zero.
type CreateOrderRequest struct {
	ProductID       string          `json:"product_id"       validate:"required,uuid"`
	Quantity        int             `json:"quantity"         validate:"required,min=1"`
	Deposit         decimal.Decimal `json:"deposit"          validate:"min=0"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"     validate:"min=0"`
	FreeShip        bool            `json:"free_ship"`
	CustomerName    string          `json:"customer_name"    validate:"required,min=2"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	StaffName       string          `json:"staff_name"`
	// OrderDate is the business date (RFC 3339); empty means now.
	OrderDate string  `json:"order_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Note      *string `json:"note"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	ID                  string          `json:"id"`
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	CustomerAddress     string          `json:"customer_address"`
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name"`
	Quantity            int             `json:"quantity"`
	DealerPrice         decimal.Decimal `json:"dealer_price"`
	RetailPrice         decimal.Decimal `json:"retail_price"`
	Deposit             decimal.Decimal `json:"deposit"`
	ShippingFee         decimal.Decimal `json:"shipping_fee"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	TotalToCollect      decimal.Decimal `json:"total_to_collect"`
	Status              string          `json:"status"`
	IsSupplierConfirmed bool            `json:"is_supplier_confirmed"`
	StaffName           string          `json:"staff_name"`
	Note                *string         `json:"note,omitempty"`
	OrderDate           string          `json:"order_date"`
	CreatedAt           string          `json:"created_at"`
}

// StatusChangeResponse is the explicit result of a status transition: the
// updated order plus the commission the transition emitted, if any. A repeat
// transition to DELIVERED returns a nil commission.
type StatusChangeResponse struct {
	Order             OrderResponse        `json:"order"`
	EmittedCommission *TransactionResponse `json:"emitted_commission,omitempty"`
}
