package entity

// Roles válidos para User.
const (
	RoleAdmin        = "ADMIN"
	RoleSeller       = "SELLER"
	RoleStockManager = "STOCK_MANAGER"
)

// ValidRole indica si el rol pertenece al enum cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSeller, RoleStockManager:
		return true
	}
	return false
}

// User representa una cuenta del sistema. PasswordHash es bcrypt; nunca se
// guarda la contraseña en claro.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"` // ADMIN, SELLER, STOCK_MANAGER
}
