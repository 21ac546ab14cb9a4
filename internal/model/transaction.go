package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeCommission = "COMMISSION"
	TransactionTypeWithdrawal = "WITHDRAWAL"
)

const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusRejected  = "REJECTED"
)

// Transaction is an entry in the append-only wallet ledger. Entries are NEVER
// deleted. Commissions are created COMPLETED when an order is delivered;
// withdrawals are created PENDING and only their status mutates afterwards
// (id and created_at are preserved through resolution).
//
// Amount is always a positive magnitude; the sign is implied by Type.
// The wallet balance is derived by folding this log — never stored.
type Transaction struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type   string          `gorm:"type:varchar(20);not null;index"`
	Amount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status string          `gorm:"type:varchar(20);not null;index"`

	// OrderID links a COMMISSION to its order. A partial unique index on
	// (order_id) WHERE type = 'COMMISSION' enforces at-most-once commission
	// per order; see infra.applySchemaPatches.
	OrderID *uuid.UUID `gorm:"type:uuid;index"`

	// Bank details, set on WITHDRAWAL entries only.
	BankName      *string
	AccountNumber *string
	AccountName   *string

	Note      *string
	CreatedAt time.Time
}
