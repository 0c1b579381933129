package handlers

import (
	"net/http"

	"restaurant-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns both lifecycle graphs for documentation
func GetStateMachineInfo(c *gin.Context) {
	var reservations []gin.H
	for _, t := range statemachine.Reservations.Transitions() {
		reservations = append(reservations, gin.H{"from": t.From, "to": t.To})
	}
	var orders []gin.H
	for _, t := range statemachine.Orders.Transitions() {
		orders = append(orders, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"reservation_lifecycle": gin.H{
			"transitions":     reservations,
			"terminal_states": []string{"completed", "cancelled"},
		},
		"order_lifecycle": gin.H{
			"transitions":     orders,
			"terminal_states": []string{"completed", "cancelled"},
		},
	})
}
