package domain

import "restaurant-api/models"

// Principal is the authenticated caller, already verified by the auth
// middleware. The core never checks credentials itself.
type Principal struct {
	ID   uint
	Role models.Role
}

// IsStaffOrOwner reports whether the principal may bypass ownership checks.
func (p Principal) IsStaffOrOwner() bool {
	return p.Role == models.RoleStaff || p.Role == models.RoleOwner
}
