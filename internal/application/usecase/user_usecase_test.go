package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/permission"
	"github.com/hspsystem/gestor-api/internal/infrastructure/storage"
)

func TestUserCreate_RolInvalidoRechazado(t *testing.T) {
	repo := storage.NewMemory(storage.SeedAdmin{Password: "x"})
	uc := NewUserUseCase(repo, testLogger())

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "nuevo", Password: "clave", Role: "SUPERVISOR",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_UsernameDuplicadoRechazado(t *testing.T) {
	repo := storage.NewMemory(storage.SeedAdmin{Username: "Administrador", Password: "x"})
	uc := NewUserUseCase(repo, testLogger())

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "Administrador", Password: "clave", Role: entity.RoleSeller,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_PerfilSinHashYConVistas(t *testing.T) {
	repo := storage.NewMemory(storage.SeedAdmin{Password: "x"})
	uc := NewUserUseCase(repo, testLogger())

	profile, err := uc.Create(dto.CreateUserRequest{
		Username: "vendedor1", Password: "clave", Name: "Vendedor Uno", Role: entity.RoleSeller,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleSeller, profile.Role)
	assert.Contains(t, profile.Views, permission.ViewNewOrder)
	assert.NotContains(t, profile.Views, permission.ViewInventory)
	assert.NotContains(t, profile.Views, permission.ViewUsers)
}

func TestUserDelete_AutoEliminacionBloqueada(t *testing.T) {
	repo := storage.NewMemory(storage.SeedAdmin{Password: "x"})
	uc := NewUserUseCase(repo, testLogger())

	users, err := repo.Users()
	require.NoError(t, err)
	adminID := users[0].ID

	err = uc.Delete(adminID, adminID)
	assert.ErrorIs(t, err, domain.ErrSelfDeletion)

	users, err = repo.Users()
	require.NoError(t, err)
	assert.Len(t, users, 1, "el admin sigue existiendo")
}

func TestUserDelete_OtroUsuario(t *testing.T) {
	repo := storage.NewMemory(storage.SeedAdmin{Password: "x"})
	uc := NewUserUseCase(repo, testLogger())

	users, err := repo.Users()
	require.NoError(t, err)
	adminID := users[0].ID

	profile, err := uc.Create(dto.CreateUserRequest{
		Username: "temporal", Password: "clave", Role: entity.RoleStockManager,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(profile.ID, adminID))

	err = uc.Delete("id-inexistente", adminID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
