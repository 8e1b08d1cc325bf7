// Package auth implementa el inicio de sesión y la emisión de tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/permission"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/jwt"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// TokenConfig parámetros de emisión de JWT.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	repo  repository.StateRepository
	token TokenConfig
	log   *logger.Logger
}

// NewUseCase crea el caso de uso de autenticación.
func NewUseCase(repo repository.StateRepository, token TokenConfig, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, token: token, log: log}
}

// Login verifica las credenciales contra la colección de usuarios y emite un
// token. El primer load sobre una colección vacía siembra el administrador,
// así que el sistema nunca queda sin cuenta con la que entrar.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	users, err := uc.repo.Users()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != req.Username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			uc.log.Warn().Str("username", req.Username).Msg("auth: contraseña incorrecta")
			return nil, domain.ErrUnauthorized
		}

		token, err := jwt.Generate(uc.token.Secret, u.ID, u.Username, u.Role, uc.token.Issuer, uc.token.ExpMinutes)
		if err != nil {
			return nil, err
		}
		uc.log.Info().Str("username", u.Username).Str("role", u.Role).Msg("auth: sesión iniciada")
		return &dto.LoginResponse{
			Token: token,
			User: dto.UserProfile{
				ID:       u.ID,
				Username: u.Username,
				Name:     u.Name,
				Role:     u.Role,
				Views:    permission.ViewsFor(u.Role),
			},
		}, nil
	}

	uc.log.Warn().Str("username", req.Username).Msg("auth: usuario inexistente")
	return nil, domain.ErrUnauthorized
}
