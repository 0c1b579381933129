// Package booking owns the reservation side of the domain engine: the
// availability resolver and the reservation lifecycle.
package booking

import (
	"errors"
	"time"

	"restaurant-api/domain"
	"restaurant-api/models"
	"restaurant-api/policy"
	"restaurant-api/statemachine"

	"gorm.io/gorm"
)

// CreateReservationInput is the validated payload for a new reservation.
type CreateReservationInput struct {
	TableID         uint
	Date            string
	TimeSlot        string
	NumberOfPeople  int
	SpecialRequests string
}

// CreateReservation places a new reservation for the principal. Checks run
// in order: policy, input shape, table existence, capacity, availability.
// The insert itself is the atomic step: the slot-key unique index guarantees
// that of two racing identical requests exactly one succeeds, the other
// getting a conflict.
func CreateReservation(db *gorm.DB, p domain.Principal, in CreateReservationInput) (*models.Reservation, error) {
	if err := policy.Check(p, policy.ReservationCreate, nil); err != nil {
		return nil, err
	}

	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.TimeSlot == "" {
		return nil, domain.InvalidInput("time slot is required")
	}
	if in.NumberOfPeople < 1 {
		return nil, domain.InvalidInput("number of people must be at least 1")
	}

	var table models.Table
	if err := db.First(&table, in.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("table not found")
		}
		return nil, domain.Internal("failed to load table", err)
	}

	// Capacity fails before any availability work.
	if !CapacityOK(&table, in.NumberOfPeople) {
		return nil, domain.InvalidInput("table cannot accommodate the number of people")
	}

	available, err := IsAvailable(db, table.ID, date, in.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.Conflict("table is already reserved at the requested time")
	}

	key := models.SlotKey(table.ID, date, in.TimeSlot)
	reservation := models.Reservation{
		UserID:          p.ID,
		TableID:         table.ID,
		Date:            date,
		TimeSlot:        in.TimeSlot,
		NumberOfPeople:  in.NumberOfPeople,
		SpecialRequests: in.SpecialRequests,
		Status:          models.ReservationPending,
		SlotKey:         &key,
	}
	if err := db.Create(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent creation for the same slot.
			return nil, domain.Conflict("table is already reserved at the requested time")
		}
		return nil, domain.Internal("failed to create reservation", err)
	}

	return getReservation(db, reservation.ID)
}

// GetReservation loads a reservation with its user and table, enforcing the
// ownership policy: customers see only their own, staff and owner see all.
func GetReservation(db *gorm.DB, p domain.Principal, id uint) (*models.Reservation, error) {
	reservation, err := getReservation(db, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Check(p, policy.ReservationRead, &policy.Resource{OwnerID: reservation.UserID}); err != nil {
		return nil, err
	}
	return reservation, nil
}

// ListReservations returns every reservation (staff/owner only).
func ListReservations(db *gorm.DB, p domain.Principal) ([]models.Reservation, error) {
	if err := policy.Check(p, policy.ReservationListAll, nil); err != nil {
		return nil, err
	}
	var reservations []models.Reservation
	err := db.Preload("User").Preload("Table").
		Order("created_at desc").
		Find(&reservations).Error
	if err != nil {
		return nil, domain.Internal("failed to list reservations", err)
	}
	return reservations, nil
}

// ListMyReservations returns the principal's own reservations.
func ListMyReservations(db *gorm.DB, p domain.Principal) ([]models.Reservation, error) {
	if err := policy.Check(p, policy.ReservationListOwn, nil); err != nil {
		return nil, err
	}
	var reservations []models.Reservation
	err := db.Preload("Table").
		Where("user_id = ?", p.ID).
		Order("created_at desc").
		Find(&reservations).Error
	if err != nil {
		return nil, domain.Internal("failed to list reservations", err)
	}
	return reservations, nil
}

// UpdateReservationStatus moves a reservation through its lifecycle. The new
// value must be an enumerated status and the transition must be legal.
// Reaching a terminal state releases the slot key so the table/date/slot
// becomes bookable again.
func UpdateReservationStatus(db *gorm.DB, p domain.Principal, id uint, status models.ReservationStatus) (*models.Reservation, error) {
	if err := policy.Check(p, policy.ReservationUpdateStatus, nil); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.InvalidInput("invalid status %q", string(status))
	}

	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("reservation not found")
		}
		return nil, domain.Internal("failed to load reservation", err)
	}

	if err := statemachine.Reservations.Can(reservation.Status, status); err != nil {
		return nil, domain.InvalidInput("%s", err.Error())
	}

	updates := map[string]interface{}{"status": status}
	if !status.Active() {
		updates["slot_key"] = nil
	}
	if err := db.Model(&reservation).Updates(updates).Error; err != nil {
		return nil, domain.Internal("failed to update reservation", err)
	}
	return getReservation(db, reservation.ID)
}

// DeleteReservation removes a reservation. Staff and owner may delete any;
// a customer only their own, regardless of status — unlike orders.
func DeleteReservation(db *gorm.DB, p domain.Principal, id uint) error {
	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound("reservation not found")
		}
		return domain.Internal("failed to load reservation", err)
	}
	if err := policy.Check(p, policy.ReservationDelete, &policy.Resource{OwnerID: reservation.UserID}); err != nil {
		return err
	}
	if err := db.Delete(&reservation).Error; err != nil {
		return domain.Internal("failed to delete reservation", err)
	}
	return nil
}

func getReservation(db *gorm.DB, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := db.Preload("User").Preload("Table").First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("reservation not found")
		}
		return nil, domain.Internal("failed to load reservation", err)
	}
	return &reservation, nil
}

// normalizeDate parses and re-formats the reservation date so that equal
// days always produce identical slot keys.
func normalizeDate(raw string) (string, error) {
	if raw == "" {
		return "", domain.InvalidInput("date is required")
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", domain.InvalidInput("date must be in YYYY-MM-DD format")
	}
	return t.Format("2006-01-02"), nil
}
