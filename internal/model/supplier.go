package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a wholesale source the orders are fulfilled from.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"not null;index"`
	Phone         *string
	Email         *string
	Website       *string
	ContactPerson *string
	Address       *string
	Industry      *string
	Notes         *string
	Image         *string
	Active        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Products []Product `gorm:"foreignKey:SupplierID"`
}
