package booking

import (
	"restaurant-api/domain"
	"restaurant-api/models"

	"gorm.io/gorm"
)

// IsAvailable reports whether a new reservation may be placed for the given
// table, date, and time slot. A slot is taken when any reservation for the
// same table and date holds the identical slot token in pending or confirmed
// state. Equality is exact string match; adjacent or overlapping slots with
// different labels do not conflict.
//
// This check alone is advisory under concurrency; the insert in
// CreateReservation is what settles a race, via the slot-key unique index.
func IsAvailable(db *gorm.DB, tableID uint, date, timeSlot string) (bool, error) {
	var count int64
	err := db.Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND time_slot = ? AND status IN ?",
			tableID, date, timeSlot,
			[]models.ReservationStatus{models.ReservationPending, models.ReservationConfirmed}).
		Count(&count).Error
	if err != nil {
		return false, domain.Internal("failed to check availability", err)
	}
	return count == 0, nil
}

// CapacityOK reports whether the table can seat the requested party.
func CapacityOK(table *models.Table, numberOfPeople int) bool {
	return numberOfPeople <= table.Capacity
}
