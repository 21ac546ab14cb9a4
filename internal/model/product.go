package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item sourced from a supplier. DealerPrice is the cost
// paid to the supplier, RetailPrice the customer-facing price. The margin
// (retail - dealer) may be zero or negative — nothing enforces profitability.
// Orders snapshot both prices at creation, so editing a product never changes
// existing orders.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"index;not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	DealerPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	RetailPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Image       *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
