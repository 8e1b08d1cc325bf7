package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/permission"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// UserUseCase administración de cuentas (solo ADMIN llega aquí vía el
// middleware de vistas).
type UserUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewUserUseCase crea el caso de uso de usuarios.
func NewUserUseCase(repo repository.StateRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log}
}

func toProfile(u entity.User) dto.UserProfile {
	return dto.UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Views:    permission.ViewsFor(u.Role),
	}
}

// List devuelve los perfiles de todos los usuarios, sin hashes.
func (uc *UserUseCase) List() ([]dto.UserProfile, error) {
	users, err := uc.repo.Users()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserProfile, 0, len(users))
	for _, u := range users {
		out = append(out, toProfile(u))
	}
	return out, nil
}

// Create da de alta un usuario con rol del enum cerrado y username único.
func (uc *UserUseCase) Create(req dto.CreateUserRequest) (*dto.UserProfile, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username y password son obligatorios", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, req.Role)
	}

	users, err := uc.repo.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == req.Username {
			return nil, fmt.Errorf("%w: username %s", domain.ErrDuplicate, req.Username)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}

	user := entity.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
	}
	users = append(users, user)
	if err := uc.repo.SaveUsers(users); err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
	profile := toProfile(user)
	return &profile, nil
}

// Delete elimina una cuenta. Un usuario no puede eliminarse a sí mismo:
// requesterID es el id del usuario autenticado que pide la baja.
func (uc *UserUseCase) Delete(id, requesterID string) error {
	if id == requesterID {
		return domain.ErrSelfDeletion
	}
	users, err := uc.repo.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			if err := uc.repo.SaveUsers(users); err != nil {
				return err
			}
			uc.log.Info().Str("user_id", id).Msg("usuario eliminado")
			return nil
		}
	}
	return domain.ErrUserNotFound
}
