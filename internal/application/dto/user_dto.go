package dto

import "github.com/hspsystem/gestor-api/internal/domain/permission"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido y perfil del usuario autenticado.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UserProfile vista pública de un usuario: nunca expone el hash de contraseña.
type UserProfile struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Name     string            `json:"name"`
	Role     string            `json:"role"`
	Views    []permission.View `json:"views"` // vistas accesibles según el rol
}

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
