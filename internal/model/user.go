package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "ADMIN"
	RoleStaff   = "STAFF"
	RolePartner = "PARTNER"
)

// New registrations start PENDING and cannot log in until an admin approves.
const (
	UserStatusPending  = "PENDING"
	UserStatusApproved = "APPROVED"
	UserStatusBlocked  = "BLOCKED"
)

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'STAFF'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
