package repository

import (
	"context"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository is the data access contract for the wallet ledger.
// The log is append-only: there is no delete, and the only update is the
// withdrawal status resolution.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	CreateTx(tx *gorm.DB, t *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	// ListAll returns the full ledger, newest first.
	ListAll(ctx context.Context) ([]model.Transaction, error)
	// CommissionExistsForOrder reports whether a COMMISSION entry is already
	// linked to the order. Checked inside the delivery transaction to keep
	// commission posting exactly-once.
	CommissionExistsForOrder(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) DB() *gorm.DB { return r.db }

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) ListAll(ctx context.Context) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (r *transactionRepo) CommissionExistsForOrder(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (bool, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var count int64
	err := db.WithContext(ctx).Model(&model.Transaction{}).
		Where("order_id = ? AND type = ?", orderID, model.TransactionTypeCommission).
		Count(&count).Error
	return count > 0, err
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id).
		Update("status", status).Error
}
