package tests

import (
	"context"
	"errors"
	"time"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories for unit tests. runTx passes a nil *gorm.DB when the
// repo's DB() is nil, so the Tx variants here ignore the tx argument.

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = true
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
	seq    []uuid.UUID // insertion order, for deterministic ListAll
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.orders[o.ID] = o
	r.seq = append(r.seq, o.ID)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.Order, int64, error) {
	all, _ := r.ListAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.seq))
	for _, id := range r.seq {
		out = append(out, *r.orders[id])
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) SetSupplierConfirmed(_ context.Context, id uuid.UUID, confirmed bool) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.IsSupplierConfirmed = confirmed
	return nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

type stubTransactionRepo struct {
	txns map[uuid.UUID]*model.Transaction
	seq  []uuid.UUID
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{txns: make(map[uuid.UUID]*model.Transaction)}
}

func (r *stubTransactionRepo) add(t *model.Transaction) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.txns[t.ID] = t
	r.seq = append(r.seq, t.ID)
}

func (r *stubTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	r.add(t)
	return nil
}

func (r *stubTransactionRepo) CreateTx(_ *gorm.DB, t *model.Transaction) error {
	r.add(t)
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	t, ok := r.txns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransactionRepo) ListAll(_ context.Context) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(r.seq))
	for _, id := range r.seq {
		out = append(out, *r.txns[id])
	}
	return out, nil
}

func (r *stubTransactionRepo) CommissionExistsForOrder(_ context.Context, _ *gorm.DB, orderID uuid.UUID) (bool, error) {
	for _, t := range r.txns {
		if t.Type == model.TransactionTypeCommission && t.OrderID != nil && *t.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTransactionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	t, ok := r.txns[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	return nil
}

func (r *stubTransactionRepo) DB() *gorm.DB { return nil }

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Status = status
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name string, dealer, retail int64) *model.Product {
	p := &model.Product{
		ID:          uuid.New(),
		Name:        name,
		CategoryID:  uuid.New(),
		SupplierID:  uuid.New(),
		DealerPrice: decimal.NewFromInt(dealer),
		RetailPrice: decimal.NewFromInt(retail),
		Active:      true,
	}
	repo.products[p.ID] = p
	return p
}

func seedOrder(repo *stubOrderRepo, status string, retail, profit int64, qty int, day string) *model.Order {
	orderDate, _ := time.Parse("2006-01-02", day)
	o := &model.Order{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "seed product",
		Quantity:    qty,
		RetailPrice: decimal.NewFromInt(retail),
		TotalProfit: decimal.NewFromInt(profit),
		Status:      status,
		OrderDate:   orderDate,
		CreatedAt:   time.Now(),
	}
	repo.orders[o.ID] = o
	repo.seq = append(repo.seq, o.ID)
	return o
}
