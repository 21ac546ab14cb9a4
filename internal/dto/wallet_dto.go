package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type WithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	BankName      string          `json:"bank_name"      validate:"required,min=2"`
	AccountNumber string          `json:"account_number" validate:"required,min=4"`
	AccountName   string          `json:"account_name"   validate:"required,min=2"`
	Note          *string         `json:"note"`
}

// ResolveWithdrawalRequest is the external-approver command: a PENDING
// withdrawal moves to COMPLETED or REJECTED.
type ResolveWithdrawalRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	OrderID       *string         `json:"order_id,omitempty"`
	BankName      *string         `json:"bank_name,omitempty"`
	AccountNumber *string         `json:"account_number,omitempty"`
	AccountName   *string         `json:"account_name,omitempty"`
	Note          *string         `json:"note,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// WalletResponse is the derived wallet view: balance from the transaction log,
// pending profit from the unresolved orders.
type WalletResponse struct {
	Balance       decimal.Decimal `json:"balance"`
	PendingProfit decimal.Decimal `json:"pending_profit"`
}

type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
}
