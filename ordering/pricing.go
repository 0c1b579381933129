// Package ordering owns the order side of the domain engine: snapshot
// pricing against the current menu and the order lifecycle.
package ordering

import (
	"errors"

	"restaurant-api/domain"
	"restaurant-api/models"

	"gorm.io/gorm"
)

// LineInput is one requested order line. A missing or zero quantity
// defaults to 1.
type LineInput struct {
	MenuItemID uint
	Quantity   int
}

// PriceOrder resolves each requested line against the current menu and
// computes the order total. Any failure aborts the whole order: a missing
// item is not-found naming the id, an unavailable item is invalid-input
// naming the item. The returned lines snapshot each item's price and name;
// the total is never recomputed from live prices afterwards.
func PriceOrder(db *gorm.DB, items []LineInput) (float64, []models.OrderItem, error) {
	if len(items) == 0 {
		return 0, nil, domain.InvalidInput("order must contain at least one item")
	}

	var total float64
	lines := make([]models.OrderItem, 0, len(items))
	for _, in := range items {
		if in.MenuItemID == 0 {
			return 0, nil, domain.InvalidInput("each item must reference a menu item")
		}
		var menuItem models.MenuItem
		if err := db.First(&menuItem, in.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, nil, domain.NotFound("menu item not found: %d", in.MenuItemID)
			}
			return 0, nil, domain.Internal("failed to load menu item", err)
		}
		if !menuItem.Available {
			return 0, nil, domain.InvalidInput("%s is currently unavailable", menuItem.Name)
		}

		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total += menuItem.Price * float64(quantity)
		lines = append(lines, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   quantity,
			Price:      menuItem.Price,
			Name:       menuItem.Name,
		})
	}
	return total, lines, nil
}
