package ordering

import (
	"errors"

	"restaurant-api/domain"
	"restaurant-api/models"
	"restaurant-api/policy"
	"restaurant-api/statemachine"

	"gorm.io/gorm"
)

// CreateOrder prices the requested lines and persists a new pending order
// for the principal. Order and lines go in as one create, so a pricing
// failure leaves nothing behind.
func CreateOrder(db *gorm.DB, p domain.Principal, items []LineInput) (*models.Order, error) {
	if err := policy.Check(p, policy.OrderCreate, nil); err != nil {
		return nil, err
	}

	total, lines, err := PriceOrder(db, items)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:     p.ID,
		Items:      lines,
		TotalPrice: total,
		Status:     models.OrderPending,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, domain.Internal("failed to create order", err)
	}
	return getOrder(db, order.ID)
}

// GetOrder loads an order with its user and resolved items, enforcing the
// ownership policy.
func GetOrder(db *gorm.DB, p domain.Principal, id uint) (*models.Order, error) {
	order, err := getOrder(db, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Check(p, policy.OrderRead, &policy.Resource{OwnerID: order.UserID}); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns every order (staff/owner only).
func ListOrders(db *gorm.DB, p domain.Principal) ([]models.Order, error) {
	if err := policy.Check(p, policy.OrderListAll, nil); err != nil {
		return nil, err
	}
	var orders []models.Order
	err := db.Preload("User").Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, domain.Internal("failed to list orders", err)
	}
	return orders, nil
}

// ListMyOrders returns the principal's own orders.
func ListMyOrders(db *gorm.DB, p domain.Principal) ([]models.Order, error) {
	if err := policy.Check(p, policy.OrderListOwn, nil); err != nil {
		return nil, err
	}
	var orders []models.Order
	err := db.Preload("Items.MenuItem").
		Where("user_id = ?", p.ID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, domain.Internal("failed to list orders", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order through its lifecycle. The new value
// must be an enumerated status and the transition must be legal.
func UpdateOrderStatus(db *gorm.DB, p domain.Principal, id uint, status models.OrderStatus) (*models.Order, error) {
	if err := policy.Check(p, policy.OrderUpdateStatus, nil); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.InvalidInput("invalid status %q", string(status))
	}

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("order not found")
		}
		return nil, domain.Internal("failed to load order", err)
	}

	if err := statemachine.Orders.Can(order.Status, status); err != nil {
		return nil, domain.InvalidInput("%s", err.Error())
	}

	if err := db.Model(&order).Update("status", status).Error; err != nil {
		return nil, domain.Internal("failed to update order", err)
	}
	return getOrder(db, order.ID)
}

// DeleteOrder removes an order. Staff and owner may delete any; a customer
// only their own, and only while it is still pending.
func DeleteOrder(db *gorm.DB, p domain.Principal, id uint) error {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound("order not found")
		}
		return domain.Internal("failed to load order", err)
	}
	if err := policy.Check(p, policy.OrderDelete, &policy.Resource{OwnerID: order.UserID, OrderStatus: order.Status}); err != nil {
		return err
	}
	// Remove lines with the order so nothing dangles.
	if err := db.Select("Items").Delete(&order).Error; err != nil {
		return domain.Internal("failed to delete order", err)
	}
	return nil
}

func getOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("User").Preload("Items.MenuItem").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("order not found")
		}
		return nil, domain.Internal("failed to load order", err)
	}
	return &order, nil
}
