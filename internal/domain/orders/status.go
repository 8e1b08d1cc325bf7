package orders

import "github.com/hspsystem/gestor-api/internal/domain/entity"

// transiciones permitidas. delivered, completed y canceled son terminales:
// una vez alcanzados no se ofrece ninguna transición posterior.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending: {
		entity.StatusPartiallyDelivered, entity.StatusDelivered, entity.StatusCanceled,
	},
	entity.StatusPartiallyDelivered: {
		entity.StatusPartiallyDelivered, entity.StatusDelivered, entity.StatusCanceled,
	},
}

// CanTransition indica si la transición from→to está permitida por la
// máquina de estados.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(s entity.OrderStatus) bool {
	return len(transitions[s]) == 0
}

// AppendDeliveryNote anexa una nota a las notas de entrega existentes,
// separada por salto de línea. Las notas se acumulan, nunca se sobreescriben.
func AppendDeliveryNote(existing, note string) string {
	if note == "" {
		return existing
	}
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
