package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrSelfDeletion    = errors.New("un usuario no puede eliminar su propia cuenta")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrOrderFinalized  = errors.New("el pedido está en un estado terminal")
)
