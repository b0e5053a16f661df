package auth

import "github.com/franciscosanchezn/restaurant-backoffice/internal/models"

// Operation names a facade capability that is subject to the permission table
type Operation string

const (
	OpRegister Operation = "user.register"

	OpAddUser     Operation = "user.add"
	OpModifyUser  Operation = "user.modify"
	OpDeleteUser  Operation = "user.delete"
	OpDisplayUser Operation = "user.display"

	OpAddMaterial      Operation = "material.add"
	OpModifyMaterial   Operation = "material.modify"
	OpDeleteMaterial   Operation = "material.delete"
	OpDisplayMaterial  Operation = "material.display"
	OpLowStockMaterial Operation = "material.low_stock"

	OpAddDish     Operation = "dish.add"
	OpModifyDish  Operation = "dish.modify"
	OpDeleteDish  Operation = "dish.delete"
	OpDisplayDish Operation = "dish.display"

	// OpResolveMaterial looks up a material to copy into a dish
	OpResolveMaterial Operation = "dish.resolve_material"

	OpAddCustomer     Operation = "customer.add"
	OpModifyCustomer  Operation = "customer.modify"
	OpDeleteCustomer  Operation = "customer.delete"
	OpDisplayCustomer Operation = "customer.display"

	OpAddOrder          Operation = "order.add"
	OpModifyOrder       Operation = "order.modify"
	OpDeleteOrder       Operation = "order.delete"
	OpDisplayOrder      Operation = "order.display"
	OpUpdateOrderStatus Operation = "order.status"
	OpCheckout          Operation = "order.checkout"

	// OpResolveDish looks up a dish to copy into an order
	OpResolveDish Operation = "order.resolve_dish"

	OpAddNotification     Operation = "notification.add"
	OpModifyNotification  Operation = "notification.modify"
	OpDeleteNotification  Operation = "notification.delete"
	OpDisplayNotification Operation = "notification.display"

	OpCalculateFinance Operation = "finance.calculate"
)

var (
	adminOnly     = []models.Role{models.RoleAdmin}
	kitchen       = []models.Role{models.RoleAdmin, models.RoleChef}
	customersOnly = []models.Role{models.RoleCustomer}
	ordering      = []models.Role{models.RoleAdmin, models.RoleCustomer}
)

// permissions is the fixed role policy. An operation mapped to nil is open
// to everyone, including callers with no session.
var permissions = map[Operation][]models.Role{
	OpRegister: nil,

	OpAddUser:     adminOnly,
	OpModifyUser:  adminOnly,
	OpDeleteUser:  adminOnly,
	OpDisplayUser: adminOnly,

	OpAddMaterial:      adminOnly,
	OpModifyMaterial:   adminOnly,
	OpDeleteMaterial:   adminOnly,
	OpDisplayMaterial:  kitchen,
	OpLowStockMaterial: kitchen,

	OpAddDish:         kitchen,
	OpModifyDish:      kitchen,
	OpDeleteDish:      kitchen,
	OpDisplayDish:     nil,
	OpResolveMaterial: kitchen,

	OpAddCustomer:     adminOnly,
	OpModifyCustomer:  adminOnly,
	OpDeleteCustomer:  adminOnly,
	OpDisplayCustomer: adminOnly,

	OpAddOrder:          customersOnly,
	OpModifyOrder:       adminOnly,
	OpDeleteOrder:       adminOnly,
	OpDisplayOrder:      adminOnly,
	OpUpdateOrderStatus: kitchen,
	OpCheckout:          customersOnly,
	OpResolveDish:       ordering,

	OpAddNotification:     adminOnly,
	OpModifyNotification:  adminOnly,
	OpDeleteNotification:  adminOnly,
	OpDisplayNotification: adminOnly,

	OpCalculateFinance: adminOnly,
}

// AllowedRoles returns the roles permitted to run op. open is true when no
// session is required. Unknown operations are closed to every role.
func AllowedRoles(op Operation) (roles []models.Role, open bool) {
	roles, known := permissions[op]
	if !known {
		return nil, false
	}
	return roles, roles == nil
}

// Allows reports whether role may run op
func Allows(op Operation, role models.Role) bool {
	roles, open := AllowedRoles(op)
	if open {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
