package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. PENDING is the initial state; the happy path is
// PENDING → SENT_TO_SUPPLIER → SHIPPING → DELIVERED. The three failure
// states below are terminal. Staff may set any status from any other to
// correct mistakes — the commission side effect is guarded separately.
const (
	OrderStatusPending             = "PENDING"
	OrderStatusSentToSupplier      = "SENT_TO_SUPPLIER"
	OrderStatusShipping            = "SHIPPING"
	OrderStatusDelivered           = "DELIVERED"
	OrderStatusReturned            = "RETURNED"
	OrderStatusCancelled           = "CANCELLED"
	OrderStatusCancelledByCustomer = "CANCELLED_BY_CUSTOMER"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:             true,
	OrderStatusSentToSupplier:      true,
	OrderStatusShipping:            true,
	OrderStatusDelivered:           true,
	OrderStatusReturned:            true,
	OrderStatusCancelled:           true,
	OrderStatusCancelledByCustomer: true,
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool { return orderStatuses[s] }

// TerminalOrderStatus reports whether s is DELIVERED or a failure state.
// Orders in a terminal status carry no pending profit.
func TerminalOrderStatus(s string) bool {
	switch s {
	case OrderStatusDelivered, OrderStatusReturned, OrderStatusCancelled, OrderStatusCancelledByCustomer:
		return true
	}
	return false
}

// Order is a customer order. Product name and both prices are snapshotted at
// creation time — later product edits must never change existing orders.
// TotalProfit and TotalToCollect are computed once at creation and frozen.
type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName    string    `gorm:"not null;index"`
	CustomerPhone   string    `gorm:"not null"`
	CustomerAddress string    `gorm:"not null"`

	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	DealerPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	RetailPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Deposit     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	// TotalProfit = (RetailPrice - DealerPrice) * Quantity
	TotalProfit decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// TotalToCollect = RetailPrice*Quantity + ShippingFee - Deposit.
	// May be negative when the deposit exceeds the goods value; not clamped.
	TotalToCollect decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Status string `gorm:"type:varchar(30);not null;default:'PENDING';index"`
	// IsSupplierConfirmed is an independent flag, not gated by Status.
	IsSupplierConfirmed bool `gorm:"not null;default:false"`

	StaffName       string     `gorm:"not null"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid"`
	Note            *string
	// OrderDate is the business date; CreatedAt is the record timestamp.
	OrderDate    time.Time `gorm:"not null;index"`
	DeliveryDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
