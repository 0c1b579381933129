package models

import "time"

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five enumerated statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID     uint        `json:"id" gorm:"primaryKey"`
	UserID uint        `json:"user_id" gorm:"not null"`
	User   User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items  []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	// TotalPrice is a snapshot computed from menu prices at creation time
	// and never recomputed, even if prices change afterwards.
	TotalPrice float64     `json:"total_price" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot price at time of order
	Name       string   `json:"name"`                  // snapshot name
}
