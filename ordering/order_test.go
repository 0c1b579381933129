package ordering

import (
	"path/filepath"
	"testing"

	"restaurant-api/config"
	"restaurant-api/domain"
	"restaurant-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	customer domain.Principal
	other    domain.Principal
	staff    domain.Principal
	burger   models.MenuItem
	soup     models.MenuItem
	offMenu  models.MenuItem
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := config.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	bob := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	sam := models.User{Username: "sam", Email: "sam@example.com", PasswordHash: "x", Role: models.RoleStaff}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	require.NoError(t, db.Create(&sam).Error)

	burger := models.MenuItem{Name: "Burger", Price: 9.50, Available: true}
	soup := models.MenuItem{Name: "Soup", Price: 4.25, Available: true}
	offMenu := models.MenuItem{Name: "Seasonal Special", Price: 12.00, Available: false}
	require.NoError(t, db.Create(&burger).Error)
	require.NoError(t, db.Create(&soup).Error)
	require.NoError(t, db.Create(&offMenu).Error)

	return &fixture{
		db:       db,
		customer: domain.Principal{ID: alice.ID, Role: models.RoleCustomer},
		other:    domain.Principal{ID: bob.ID, Role: models.RoleCustomer},
		staff:    domain.Principal{ID: sam.ID, Role: models.RoleStaff},
		burger:   burger,
		soup:     soup,
		offMenu:  offMenu,
	}
}

func (f *fixture) orderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestPriceOrder(t *testing.T) {
	f := setup(t)

	total, lines, err := PriceOrder(f.db, []LineInput{
		{MenuItemID: f.burger.ID, Quantity: 2},
		{MenuItemID: f.soup.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 23.25, total, 1e-9)
	require.Len(t, lines, 2)
	assert.Equal(t, 9.50, lines[0].Price)
	assert.Equal(t, "Burger", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestPriceOrderDefaultsQuantityToOne(t *testing.T) {
	f := setup(t)

	total, lines, err := PriceOrder(f.db, []LineInput{{MenuItemID: f.burger.ID}})
	require.NoError(t, err)
	assert.InDelta(t, 9.50, total, 1e-9)
	assert.Equal(t, 1, lines[0].Quantity)

	// Negative quantities collapse to 1 as well.
	total, lines, err = PriceOrder(f.db, []LineInput{{MenuItemID: f.burger.ID, Quantity: -3}})
	require.NoError(t, err)
	assert.InDelta(t, 9.50, total, 1e-9)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestPriceOrderFailures(t *testing.T) {
	f := setup(t)

	_, _, err := PriceOrder(f.db, nil)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))

	_, _, err = PriceOrder(f.db, []LineInput{{MenuItemID: 999, Quantity: 1}})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.ErrorContains(t, err, "999")

	_, _, err = PriceOrder(f.db, []LineInput{{MenuItemID: f.offMenu.ID, Quantity: 1}})
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	assert.ErrorContains(t, err, "Seasonal Special")
}

func TestCreateOrder(t *testing.T) {
	f := setup(t)

	order, err := CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.burger.ID, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 19.00, order.TotalPrice, 1e-9)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Burger", order.Items[0].MenuItem.Name)
	assert.Equal(t, "alice", order.User.Username)
}

func TestCreateOrderRequiresCustomer(t *testing.T) {
	f := setup(t)
	_, err := CreateOrder(f.db, f.staff, []LineInput{{MenuItemID: f.burger.ID, Quantity: 1}})
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

// An order containing any unavailable item is rejected wholesale; nothing
// is persisted.
func TestCreateOrderRejectsUnavailableItemWholesale(t *testing.T) {
	f := setup(t)

	_, err := CreateOrder(f.db, f.customer, []LineInput{
		{MenuItemID: f.burger.ID, Quantity: 1},
		{MenuItemID: f.offMenu.ID, Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))

	assert.Equal(t, int64(0), f.orderCount(t))
	var items int64
	require.NoError(t, f.db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), items)
}

// The total is a snapshot: later menu price changes never touch it.
func TestOrderTotalIsSnapshot(t *testing.T) {
	f := setup(t)

	order, err := CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.burger.ID, Quantity: 2}})
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&models.MenuItem{}).Where("id = ?", f.burger.ID).Update("price", 99.99).Error)

	reread, err := GetOrder(f.db, f.customer, order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 19.00, reread.TotalPrice, 1e-9)
	assert.Equal(t, 9.50, reread.Items[0].Price)
}

func TestGetOrderOwnership(t *testing.T) {
	f := setup(t)

	order, err := CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.soup.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = GetOrder(f.db, f.other, order.ID)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = GetOrder(f.db, f.staff, order.ID)
	assert.NoError(t, err)

	_, err = GetOrder(f.db, f.customer, 999)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUpdateOrderStatus(t *testing.T) {
	f := setup(t)

	order, err := CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.burger.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = UpdateOrderStatus(f.db, f.customer, order.ID, models.OrderConfirmed)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = UpdateOrderStatus(f.db, f.staff, order.ID, "delivered")
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))

	_, err = UpdateOrderStatus(f.db, f.staff, order.ID, models.OrderCompleted)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))

	for _, next := range []models.OrderStatus{models.OrderConfirmed, models.OrderPreparing, models.OrderCompleted} {
		updated, err := UpdateOrderStatus(f.db, f.staff, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// Completed is terminal.
	_, err = UpdateOrderStatus(f.db, f.staff, order.ID, models.OrderCancelled)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestDeleteOrder(t *testing.T) {
	f := setup(t)

	order, err := CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.burger.ID, Quantity: 1}})
	require.NoError(t, err)

	// Someone else's pending order.
	err = DeleteOrder(f.db, f.other, order.ID)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	// Own order while pending is fine.
	require.NoError(t, DeleteOrder(f.db, f.customer, order.ID))
	assert.Equal(t, int64(0), f.orderCount(t))

	// Once moved past pending the customer can no longer delete it.
	order, err = CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.soup.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = UpdateOrderStatus(f.db, f.staff, order.ID, models.OrderCancelled)
	require.NoError(t, err)

	err = DeleteOrder(f.db, f.customer, order.ID)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	// Staff may always delete.
	require.NoError(t, DeleteOrder(f.db, f.staff, order.ID))

	err = DeleteOrder(f.db, f.staff, order.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestListOrders(t *testing.T) {
	f := setup(t)

	_, err := CreateOrder(f.db, f.customer, []LineInput{{MenuItemID: f.burger.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = CreateOrder(f.db, f.other, []LineInput{{MenuItemID: f.soup.ID, Quantity: 2}})
	require.NoError(t, err)

	all, err := ListOrders(f.db, f.staff)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = ListOrders(f.db, f.customer)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	mine, err := ListMyOrders(f.db, f.customer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.customer.ID, mine[0].UserID)
}
