package models

import (
	"fmt"
	"time"
)

// ReservationStatus represents all possible states of a table reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Active reports whether a reservation in this status still occupies its slot.
func (s ReservationStatus) Active() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	UserID          uint              `json:"user_id" gorm:"not null"`
	User            User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TableID         uint              `json:"table_id" gorm:"not null"`
	Table           Table             `json:"table,omitempty" gorm:"foreignKey:TableID"`
	Date            string            `json:"date" gorm:"not null"`
	TimeSlot        string            `json:"time_slot" gorm:"not null"`
	NumberOfPeople  int               `json:"number_of_people" gorm:"not null"`
	SpecialRequests string            `json:"special_requests"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	// SlotKey is set to "tableID|date|timeSlot" while the reservation is
	// pending or confirmed and nulled once it reaches a terminal state.
	// The unique index makes the availability-check-plus-insert atomic:
	// of two racing creations for the same slot, exactly one insert wins.
	SlotKey   *string   `json:"-" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotKey builds the uniqueness token for a table/date/slot combination.
// Slot equality is exact string match by design.
func SlotKey(tableID uint, date, timeSlot string) string {
	return fmt.Sprintf("%d|%s|%s", tableID, date, timeSlot)
}
