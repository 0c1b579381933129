package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/domain"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Available   *bool   `json:"available"`
}

// CreateMenuItem adds an item to the menu — staff/owner (route-gated)
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		fail(c, domain.Internal("failed to create menu item", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// ListMenuItems returns the menu (public)
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	if err := query.Find(&items).Error; err != nil {
		fail(c, domain.Internal("failed to list menu items", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		fail(c, domain.NotFound("menu item not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Available   *bool    `json:"available"`
}

// UpdateMenuItem updates a menu item — staff/owner (route-gated). Price
// changes here never touch already-created orders; totals are snapshots.
func UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		fail(c, domain.NotFound("menu item not found"))
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
			fail(c, domain.Internal("failed to update menu item", err))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item — staff/owner (route-gated)
func DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		fail(c, domain.NotFound("menu item not found"))
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		fail(c, domain.Internal("failed to delete menu item", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
