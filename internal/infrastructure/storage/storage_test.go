package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
)

func TestUsers_SiembraAdminEnColeccionVacia(t *testing.T) {
	store := NewMemory(SeedAdmin{Username: "Administrador", Password: "secreta"})

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)

	admin := users[0]
	assert.Equal(t, "Administrador", admin.Username)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secreta")))

	// Segunda carga: devuelve el mismo admin, no siembra otro.
	again, err := store.Users()
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, admin.ID, again[0].ID)
}

func TestUsers_NoSiembraSiHayUsuarios(t *testing.T) {
	store := NewMemory(SeedAdmin{})
	existing := []entity.User{{ID: "u1", Username: "vendedor", Role: entity.RoleSeller}}
	require.NoError(t, store.SaveUsers(existing))

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "vendedor", users[0].Username)
}

func TestFileStore_PersisteEntreInstancias(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFile(dir, SeedAdmin{Password: "x"})
	require.NoError(t, err)

	products := []entity.Product{{
		ID:        "p1",
		Name:      "Café Torrado",
		Price:     decimal.NewFromFloat(12.50),
		CostPrice: decimal.NewFromFloat(8.00),
		Stock:     3,
	}}
	require.NoError(t, store.SaveProducts(products))

	// Una instancia nueva sobre el mismo directorio ve lo persistido.
	reopened, err := NewFile(dir, SeedAdmin{Password: "x"})
	require.NoError(t, err)

	got, err := reopened.Products()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Café Torrado", got[0].Name)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(got[0].Price))
	assert.Equal(t, 3, got[0].Stock)

	// Archivo en disco con el nombre de la clave original.
	_, err = os.Stat(filepath.Join(dir, "app_products.json"))
	assert.NoError(t, err)
}

func TestColeccionInexistenteDevuelveVacia(t *testing.T) {
	store := NewMemory(SeedAdmin{Password: "x"})

	orders, err := store.Orders()
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
