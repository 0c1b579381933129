package handlers

import (
	"errors"
	"net/http"

	"restaurant-api/config"
	"restaurant-api/domain"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTableRequest struct {
	Number   int    `json:"number" binding:"required,gt=0"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Location string `json:"location"`
}

// CreateTable adds a table to the inventory — owner only (route-gated)
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table := models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
		Status:   models.TableAvailable,
	}
	if err := config.DB.Create(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, domain.Conflict("table number already exists"))
			return
		}
		fail(c, domain.Internal("failed to create table", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

// ListTables returns all tables (public)
func ListTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Order("number asc").Find(&tables).Error; err != nil {
		fail(c, domain.Internal("failed to list tables", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// GetTable returns a single table (public)
func GetTable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		fail(c, domain.NotFound("table not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

type UpdateTableRequest struct {
	Number   *int                `json:"number" binding:"omitempty,gt=0"`
	Capacity *int                `json:"capacity" binding:"omitempty,gt=0"`
	Location *string             `json:"location"`
	Status   *models.TableStatus `json:"status"`
}

// UpdateTable updates table details — owner only (route-gated). The status
// field is descriptive; availability is decided by reservation records.
func UpdateTable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		fail(c, domain.NotFound("table not found"))
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Number != nil {
		table.Number = *req.Number
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Location != nil {
		table.Location = *req.Location
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			fail(c, domain.InvalidInput("invalid table status %q", string(*req.Status)))
			return
		}
		table.Status = *req.Status
	}

	if err := config.DB.Save(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, domain.Conflict("table number already exists"))
			return
		}
		fail(c, domain.Internal("failed to update table", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table updated", "table": table})
}

// DeleteTable removes a table — owner only (route-gated)
func DeleteTable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		fail(c, domain.NotFound("table not found"))
		return
	}
	if err := config.DB.Delete(&table).Error; err != nil {
		fail(c, domain.Internal("failed to delete table", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}
