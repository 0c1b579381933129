package handlers

import (
	"net/http"

	"restaurant-api/booking"
	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	TableID         uint   `json:"table_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	TimeSlot        string `json:"time_slot" binding:"required"`
	NumberOfPeople  int    `json:"number_of_people" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

// CreateReservation books a table for the logged-in customer
func CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := booking.CreateReservation(config.DB, middleware.Principal(c), booking.CreateReservationInput{
		TableID:         req.TableID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		NumberOfPeople:  req.NumberOfPeople,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reservation created", "reservation": reservation})
}

// ListReservations returns all reservations — staff/owner
func ListReservations(c *gin.Context) {
	reservations, err := booking.ListReservations(config.DB, middleware.Principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetMyReservations returns the logged-in customer's reservations
func GetMyReservations(c *gin.Context) {
	reservations, err := booking.ListMyReservations(config.DB, middleware.Principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetReservation returns a reservation by ID, subject to ownership policy
func GetReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reservation, err := booking.GetReservation(config.DB, middleware.Principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

// UpdateReservationStatus moves a reservation through its lifecycle — staff/owner
func UpdateReservationStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := booking.UpdateReservationStatus(config.DB, middleware.Principal(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation status updated", "reservation": reservation})
}

// DeleteReservation removes a reservation, subject to ownership policy
func DeleteReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := booking.DeleteReservation(config.DB, middleware.Principal(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
