package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/permission"
)

func TestAllowed_AdminAccedeATodo(t *testing.T) {
	for _, v := range []permission.View{
		permission.ViewDashboard, permission.ViewUsers, permission.ViewInventory,
		permission.ViewGoals, permission.ViewPayments,
	} {
		assert.True(t, permission.Allowed(entity.RoleAdmin, v), "ADMIN debe acceder a %s", v)
	}
}

func TestAllowed_VistasComunes(t *testing.T) {
	// Dashboard y agenda son comunes a todos los roles autenticados.
	for _, role := range []string{entity.RoleSeller, entity.RoleStockManager} {
		assert.True(t, permission.Allowed(role, permission.ViewDashboard))
		assert.True(t, permission.Allowed(role, permission.ViewAgenda))
	}
}

func TestAllowed_Vendedor(t *testing.T) {
	assert.True(t, permission.Allowed(entity.RoleSeller, permission.ViewNewOrder))
	assert.True(t, permission.Allowed(entity.RoleSeller, permission.ViewPayments))
	assert.False(t, permission.Allowed(entity.RoleSeller, permission.ViewProducts),
		"SELLER no gestiona catálogo")
	assert.False(t, permission.Allowed(entity.RoleSeller, permission.ViewUsers))
}

func TestAllowed_Bodeguero(t *testing.T) {
	assert.True(t, permission.Allowed(entity.RoleStockManager, permission.ViewInventory))
	assert.True(t, permission.Allowed(entity.RoleStockManager, permission.ViewReports))
	assert.False(t, permission.Allowed(entity.RoleStockManager, permission.ViewNewOrder))
	assert.False(t, permission.Allowed(entity.RoleStockManager, permission.ViewGoals))
}

func TestAllowed_RolDesconocido(t *testing.T) {
	// Un rol fuera de la tabla no recibe ni las vistas comunes.
	assert.False(t, permission.Allowed("INTRUSO", permission.ViewDashboard))
	assert.False(t, permission.Allowed("INTRUSO", permission.ViewAgenda))
	assert.False(t, permission.Allowed("", permission.ViewDashboard))
	assert.Empty(t, permission.ViewsFor("INTRUSO"))
}

func TestViewsFor_IncluyeSoloPermitidas(t *testing.T) {
	views := permission.ViewsFor(entity.RoleStockManager)
	assert.Contains(t, views, permission.ViewProducts)
	assert.NotContains(t, views, permission.ViewUsers)
}
