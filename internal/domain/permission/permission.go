// Package permission define la tabla cerrada rol→vistas. Reemplaza la
// verificación dinámica de vistas por un mapeo estático consultable.
package permission

import "github.com/hspsystem/gestor-api/internal/domain/entity"

// View identifica una vista o capacidad de la aplicación.
type View string

const (
	ViewDashboard  View = "DASHBOARD"
	ViewCustomers  View = "CUSTOMERS"
	ViewSuppliers  View = "SUPPLIERS"
	ViewProducts   View = "PRODUCTS"
	ViewInventory  View = "INVENTORY"
	ViewNewOrder   View = "NEW_ORDER"
	ViewOpenOrders View = "OPEN_ORDERS"
	ViewReports    View = "REPORTS"
	ViewAgenda     View = "AGENDA"
	ViewUsers      View = "USERS"
	ViewPayments   View = "PAYMENTS"
	ViewGoals      View = "GOALS"
)

// común a todos los roles autenticados.
var sharedViews = []View{ViewDashboard, ViewAgenda}

// vistas adicionales por rol. ADMIN no aparece: tiene acceso total.
var roleViews = map[string][]View{
	entity.RoleSeller: {
		ViewNewOrder, ViewOpenOrders, ViewCustomers, ViewReports, ViewPayments, ViewGoals,
	},
	entity.RoleStockManager: {
		ViewProducts, ViewInventory, ViewSuppliers, ViewReports,
	},
}

// Allowed indica si el rol puede acceder a la vista. Un rol fuera de la
// tabla (por ejemplo, un token emitido antes de renombrar un rol) no
// accede a nada, ni siquiera a las vistas compartidas.
func Allowed(role string, view View) bool {
	if !entity.ValidRole(role) {
		return false
	}
	if role == entity.RoleAdmin {
		return true
	}
	for _, v := range sharedViews {
		if v == view {
			return true
		}
	}
	for _, v := range roleViews[role] {
		if v == view {
			return true
		}
	}
	return false
}

// ViewsFor devuelve las vistas accesibles para un rol (útil para que el
// cliente arme su menú).
func ViewsFor(role string) []View {
	all := []View{
		ViewDashboard, ViewCustomers, ViewSuppliers, ViewProducts, ViewInventory,
		ViewNewOrder, ViewOpenOrders, ViewReports, ViewAgenda, ViewUsers,
		ViewPayments, ViewGoals,
	}
	var out []View
	for _, v := range all {
		if Allowed(role, v) {
			out = append(out, v)
		}
	}
	return out
}
