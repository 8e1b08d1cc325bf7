package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/orders"
)

func TestCanTransition_DesdePending(t *testing.T) {
	for _, to := range []entity.OrderStatus{
		entity.StatusPartiallyDelivered, entity.StatusDelivered, entity.StatusCanceled,
	} {
		assert.True(t, orders.CanTransition(entity.StatusPending, to), "pending→%s", to)
	}
	assert.False(t, orders.CanTransition(entity.StatusPending, entity.StatusPending))
}

func TestCanTransition_ParcialPuedeRepetirse(t *testing.T) {
	// Una entrega parcial puede seguir recibiendo entregas parciales (con notas).
	assert.True(t, orders.CanTransition(entity.StatusPartiallyDelivered, entity.StatusPartiallyDelivered))
	assert.True(t, orders.CanTransition(entity.StatusPartiallyDelivered, entity.StatusDelivered))
	assert.True(t, orders.CanTransition(entity.StatusPartiallyDelivered, entity.StatusCanceled))
}

func TestCanTransition_TerminalesNoSalen(t *testing.T) {
	for _, from := range []entity.OrderStatus{
		entity.StatusDelivered, entity.StatusCompleted, entity.StatusCanceled,
	} {
		assert.True(t, orders.IsTerminal(from))
		for _, to := range []entity.OrderStatus{
			entity.StatusPending, entity.StatusPartiallyDelivered, entity.StatusDelivered, entity.StatusCanceled,
		} {
			assert.False(t, orders.CanTransition(from, to), "%s→%s debe rechazarse", from, to)
		}
	}
}

func TestAppendDeliveryNote_Acumula(t *testing.T) {
	notas := orders.AppendDeliveryNote("", "faltan 2 cajas")
	assert.Equal(t, "faltan 2 cajas", notas)

	notas = orders.AppendDeliveryNote(notas, "entregada 1 caja más")
	assert.Equal(t, "faltan 2 cajas\nentregada 1 caja más", notas)

	// nota vacía no modifica nada
	assert.Equal(t, notas, orders.AppendDeliveryNote(notas, ""))
}
