package service

import (
	"context"
	"time"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/config"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/repository"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletService interface {
	// Wallet returns the derived balance and pending profit. Both are
	// recomputed from the collections on every call — never cached.
	Wallet(ctx context.Context) (*dto.WalletResponse, error)
	History(ctx context.Context) (*dto.TransactionListResponse, error)
	RequestWithdrawal(ctx context.Context, req dto.WithdrawalRequest) (*dto.TransactionResponse, error)
	// ResolveWithdrawal is the approval-workflow entry point: a PENDING
	// withdrawal moves to COMPLETED or REJECTED. The approver itself is not
	// modeled here.
	ResolveWithdrawal(ctx context.Context, id uuid.UUID, action string) (*dto.TransactionResponse, error)
	// Transactions returns the raw ledger for the statement generator.
	Transactions(ctx context.Context) ([]model.Transaction, error)
}

type walletService struct {
	txnRepo    repository.TransactionRepository
	orderRepo  repository.OrderRepository
	cfg        *config.Config
	dispatcher *worker.Dispatcher
}

func NewWalletService(
	txnRepo repository.TransactionRepository,
	orderRepo repository.OrderRepository,
	cfg *config.Config,
	dispatcher *worker.Dispatcher,
) WalletService {
	return &walletService{txnRepo: txnRepo, orderRepo: orderRepo, cfg: cfg, dispatcher: dispatcher}
}

// ── Pure folds ───────────────────────────────────────────────────────────────

// WalletBalanceOf folds the ledger into the wallet balance:
// completed commissions minus completed withdrawals. PENDING and REJECTED
// entries never contribute.
func WalletBalanceOf(txns []model.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		if t.Status != model.TransactionStatusCompleted {
			continue
		}
		switch t.Type {
		case model.TransactionTypeCommission:
			balance = balance.Add(t.Amount)
		case model.TransactionTypeWithdrawal:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// PendingProfitOf sums the profit of orders still in flight: neither
// delivered nor written off by a terminal failure state.
func PendingProfitOf(orders []model.Order) decimal.Decimal {
	pending := decimal.Zero
	for _, o := range orders {
		if !model.TerminalOrderStatus(o.Status) {
			pending = pending.Add(o.TotalProfit)
		}
	}
	return pending
}

// ── Operations ───────────────────────────────────────────────────────────────

func (s *walletService) Wallet(ctx context.Context) (*dto.WalletResponse, error) {
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.WalletResponse{
		Balance:       WalletBalanceOf(txns),
		PendingProfit: PendingProfitOf(orders),
	}, nil
}

func (s *walletService) History(ctx context.Context) (*dto.TransactionListResponse, error) {
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, *transactionToResponse(&txns[i]))
	}
	return &dto.TransactionListResponse{Data: items}, nil
}

func (s *walletService) Transactions(ctx context.Context) ([]model.Transaction, error) {
	return s.txnRepo.ListAll(ctx)
}

// RequestWithdrawal validates the amount against the configured minimum and
// the current balance, then appends a PENDING withdrawal. Nothing is
// persisted on rejection.
func (s *walletService) RequestWithdrawal(ctx context.Context, req dto.WithdrawalRequest) (*dto.TransactionResponse, error) {
	minAmount := s.cfg.WithdrawalMinAmount()
	if req.Amount.LessThan(minAmount) {
		return nil, apierror.Validation("minimum withdrawal is " + minAmount.StringFixed(0))
	}

	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(WalletBalanceOf(txns)) {
		return nil, apierror.Validation("withdrawal exceeds wallet balance")
	}

	txn := &model.Transaction{
		Type:          model.TransactionTypeWithdrawal,
		Amount:        req.Amount,
		Status:        model.TransactionStatusPending,
		BankName:      &req.BankName,
		AccountNumber: &req.AccountNumber,
		AccountName:   &req.AccountName,
		Note:          req.Note,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	// Notify the approver mailbox — best effort, fire & forget.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueNotify(ctx, worker.NotifyJobPayload{
			ToEmail: s.cfg.ApproverEmail,
			Subject: "Withdrawal request pending approval",
			Body: "A withdrawal of " + req.Amount.StringFixed(0) + " to " + req.BankName +
				" (" + req.AccountName + ") is awaiting approval.",
		})
	}

	return transactionToResponse(txn), nil
}

// ResolveWithdrawal mutates the status of a PENDING withdrawal in place —
// id and created_at are preserved, no new entity is created. Terminal
// statuses are final.
func (s *walletService) ResolveWithdrawal(ctx context.Context, id uuid.UUID, action string) (*dto.TransactionResponse, error) {
	txn, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("transaction not found")
	}
	if txn.Type != model.TransactionTypeWithdrawal {
		return nil, apierror.Validation("only withdrawals can be resolved")
	}
	if txn.Status != model.TransactionStatusPending {
		return nil, apierror.Validation("withdrawal already resolved")
	}

	status := model.TransactionStatusRejected
	if action == "approve" {
		status = model.TransactionStatusCompleted
	}
	if err := s.txnRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	txn.Status = status
	return transactionToResponse(txn), nil
}

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	var orderID *string
	if t.OrderID != nil {
		s := t.OrderID.String()
		orderID = &s
	}
	return &dto.TransactionResponse{
		ID:            t.ID.String(),
		Type:          t.Type,
		Amount:        t.Amount,
		Status:        t.Status,
		OrderID:       orderID,
		BankName:      t.BankName,
		AccountNumber: t.AccountNumber,
		AccountName:   t.AccountName,
		Note:          t.Note,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
