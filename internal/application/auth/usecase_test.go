package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/permission"
	"github.com/hspsystem/gestor-api/internal/infrastructure/storage"
	pkgjwt "github.com/hspsystem/gestor-api/pkg/jwt"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

var testToken = TokenConfig{Secret: "secreto-de-test", Issuer: "gestor-pro-test", ExpMinutes: 60}

func newAuthUC() *UseCase {
	repo := storage.NewMemory(storage.SeedAdmin{Username: "Administrador", Password: "admin123"})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewUseCase(repo, testToken, log)
}

func TestLogin_AdminSembrado(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.Login(dto.LoginRequest{Username: "Administrador", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Contains(t, out.User.Views, permission.ViewUsers, "ADMIN tiene todas las vistas")

	// El token lleva los claims del usuario
	userID, username, role, err := pkgjwt.Parse(testToken.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "Administrador", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Username: "Administrador", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
