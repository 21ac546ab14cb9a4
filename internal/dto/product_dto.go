package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Name       string `form:"name"`
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	SupplierID string `form:"supplier_id" validate:"omitempty,uuid"`
	Active     string `form:"active"` // "false" = inactive, "all" = everything, default active
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"         validate:"required,min=2"`
	CategoryID  string          `json:"category_id"  validate:"required,uuid"`
	SupplierID  string          `json:"supplier_id"  validate:"required,uuid"`
	DealerPrice decimal.Decimal `json:"dealer_price" validate:"min=0"`
	RetailPrice decimal.Decimal `json:"retail_price" validate:"min=0"`
	Image       *string         `json:"image"        validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"         validate:"omitempty,min=2"`
	CategoryID  *string          `json:"category_id"  validate:"omitempty,uuid"`
	SupplierID  *string          `json:"supplier_id"  validate:"omitempty,uuid"`
	DealerPrice *decimal.Decimal `json:"dealer_price" validate:"omitempty,min=0"`
	RetailPrice *decimal.Decimal `json:"retail_price" validate:"omitempty,min=0"`
	Image       *string          `json:"image"        validate:"omitempty,url"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	SupplierID  string          `json:"supplier_id"`
	DealerPrice decimal.Decimal `json:"dealer_price"`
	RetailPrice decimal.Decimal `json:"retail_price"`
	// Margin = retail - dealer; may be zero or negative.
	Margin decimal.Decimal `json:"margin"`
	Image  *string         `json:"image,omitempty"`
	Active bool            `json:"active"`
}

// PriceCheckResponse is served by the public cached price endpoint.
type PriceCheckResponse struct {
	Name        string          `json:"name"`
	RetailPrice decimal.Decimal `json:"retail_price"`
}
