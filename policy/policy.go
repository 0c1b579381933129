// Package policy is the single access-control component. Every mutation and
// every protected read goes through Check, so the whole rule set is auditable
// here instead of being duplicated per resource.
package policy

import (
	"restaurant-api/domain"
	"restaurant-api/models"
)

// Action identifies what the caller is trying to do.
type Action string

const (
	UserReadSelf   Action = "user.read-self"
	UserUpdateSelf Action = "user.update-self"
	UserList       Action = "user.list"
	UserRead       Action = "user.read"
	UserDelete     Action = "user.delete"

	TableCreate Action = "table.create"
	TableUpdate Action = "table.update"
	TableDelete Action = "table.delete"

	MenuCreate Action = "menu.create"
	MenuUpdate Action = "menu.update"
	MenuDelete Action = "menu.delete"

	ReservationCreate       Action = "reservation.create"
	ReservationListAll      Action = "reservation.list-all"
	ReservationListOwn      Action = "reservation.list-own"
	ReservationRead         Action = "reservation.read"
	ReservationUpdateStatus Action = "reservation.update-status"
	ReservationDelete       Action = "reservation.delete"

	OrderCreate       Action = "order.create"
	OrderListAll      Action = "order.list-all"
	OrderListOwn      Action = "order.list-own"
	OrderRead         Action = "order.read"
	OrderUpdateStatus Action = "order.update-status"
	OrderDelete       Action = "order.delete"
)

// Resource carries the ownership context for actions whose outcome depends
// on who created the resource and what state it is in.
type Resource struct {
	OwnerID     uint
	OrderStatus models.OrderStatus
}

// roleAllow gates actions that depend on role alone.
var roleAllow = map[Action][]models.Role{
	UserReadSelf:   {models.RoleCustomer, models.RoleStaff, models.RoleOwner},
	UserUpdateSelf: {models.RoleCustomer, models.RoleStaff, models.RoleOwner},
	UserList:       {models.RoleOwner},
	UserRead:       {models.RoleOwner},
	UserDelete:     {models.RoleOwner},

	TableCreate: {models.RoleOwner},
	TableUpdate: {models.RoleOwner},
	TableDelete: {models.RoleOwner},

	MenuCreate: {models.RoleStaff, models.RoleOwner},
	MenuUpdate: {models.RoleStaff, models.RoleOwner},
	MenuDelete: {models.RoleStaff, models.RoleOwner},

	ReservationCreate:       {models.RoleCustomer},
	ReservationListAll:      {models.RoleStaff, models.RoleOwner},
	ReservationListOwn:      {models.RoleCustomer},
	ReservationUpdateStatus: {models.RoleStaff, models.RoleOwner},

	OrderCreate:       {models.RoleCustomer},
	OrderListAll:      {models.RoleStaff, models.RoleOwner},
	OrderListOwn:      {models.RoleCustomer},
	OrderUpdateStatus: {models.RoleStaff, models.RoleOwner},
}

// Check decides whether the principal may perform action. A nil return
// means allow; a deny is always a distinguishable forbidden error, never
// a not-found, so a caller probing an existing resource learns it is
// not permitted rather than that nothing exists.
func Check(p domain.Principal, action Action, res *Resource) error {
	switch action {
	case ReservationRead, ReservationDelete, OrderRead:
		// Staff and owner bypass ownership; a customer may act only on
		// resources they created.
		if p.IsStaffOrOwner() {
			return nil
		}
		if res != nil && res.OwnerID == p.ID {
			return nil
		}
		return domain.Forbidden("access denied: resource belongs to another user")

	case OrderDelete:
		if p.IsStaffOrOwner() {
			return nil
		}
		if res == nil || res.OwnerID != p.ID {
			return domain.Forbidden("access denied: resource belongs to another user")
		}
		// Self-delete is allowed only while the order is still pending.
		if res.OrderStatus != models.OrderPending {
			return domain.Forbidden("access denied: only pending orders can be deleted by their customer")
		}
		return nil
	}

	allowed, known := roleAllow[action]
	if !known {
		return domain.Forbidden("access denied")
	}
	for _, r := range allowed {
		if p.Role == r {
			return nil
		}
	}
	return domain.Forbidden("access denied: requires role %s", rolesString(allowed))
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += " or "
		}
		s += string(r)
	}
	return s
}
