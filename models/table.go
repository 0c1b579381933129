package models

import "time"

// TableStatus is a descriptive label on a table. Reservation conflict
// detection never consults it; slot-level reservation records are the
// source of truth for availability.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

// Valid reports whether s is one of the enumerated table statuses.
func (s TableStatus) Valid() bool {
	return s == TableAvailable || s == TableReserved
}

type Table struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Number    int         `json:"number" gorm:"uniqueIndex;not null"`
	Capacity  int         `json:"capacity" gorm:"not null"`
	Location  string      `json:"location"`
	Status    TableStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
