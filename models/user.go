package models

import "time"

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOwner    Role = "owner"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleOwner:
		return true
	}
	return false
}

// Profile holds optional profile fields embedded in User.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Username     string  `json:"username" gorm:"uniqueIndex;not null"`
	Email        string  `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string  `json:"-" gorm:"not null"`
	Role         Role    `json:"role" gorm:"not null;default:'customer'"`
	Profile      Profile `json:"profile" gorm:"embedded;embeddedPrefix:profile_"`
	// Salary is meaningful for staff and owner only; nothing enforces that
	// structurally, matching the original data model.
	Salary    *float64  `json:"salary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
