package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/ordering"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Items []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity"`
	} `json:"items" binding:"required,min=1"`
}

// CreateOrder places a new order for the logged-in customer. The total is
// priced from the current menu and fixed at creation.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]ordering.LineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, ordering.LineInput{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	order, err := ordering.CreateOrder(config.DB, middleware.Principal(c), lines)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// ListOrders returns all orders — staff/owner
func ListOrders(c *gin.Context) {
	orders, err := ordering.ListOrders(config.DB, middleware.Principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetMyOrders returns the logged-in customer's orders
func GetMyOrders(c *gin.Context) {
	orders, err := ordering.ListMyOrders(config.DB, middleware.Principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns an order by ID, subject to ownership policy
func GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := ordering.GetOrder(config.DB, middleware.Principal(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle — staff/owner
func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := ordering.UpdateOrderStatus(config.DB, middleware.Principal(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// DeleteOrder removes an order, subject to ownership and pending-only policy
func DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ordering.DeleteOrder(config.DB, middleware.Principal(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
