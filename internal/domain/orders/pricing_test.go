package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/orders"
)

func item(id string, qty int, price float64) entity.OrderItem {
	p := decimal.NewFromFloat(price)
	return entity.OrderItem{
		ProductID: id,
		Quantity:  qty,
		UnitPrice: p,
		Total:     orders.LineTotal(qty, p),
	}
}

func TestLineTotal(t *testing.T) {
	assert.True(t, orders.LineTotal(3, decimal.NewFromInt(10)).Equal(decimal.NewFromInt(30)))
}

func TestComputeTotals_DescuentoFijo(t *testing.T) {
	// Carrito [{A, 3, 10}, {B, 1, 5}] con descuento fijo de 5:
	// subtotal=35, valor=5, porcentaje≈14.29, total=30.
	items := []entity.OrderItem{item("a", 3, 10), item("b", 1, 5)}
	tot := orders.ComputeTotals(items, orders.Discount{Mode: orders.DiscountFlat, Value: decimal.NewFromInt(5)})

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(35)), "subtotal=%s", tot.Subtotal)
	assert.True(t, tot.DiscountValue.Equal(decimal.NewFromInt(5)))
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(30)))

	esperado := decimal.NewFromFloat(14.29)
	assert.True(t, tot.DiscountPercent.Sub(esperado).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"porcentaje≈14.29, fue %s", tot.DiscountPercent)
}

func TestComputeTotals_DescuentoPorcentual(t *testing.T) {
	items := []entity.OrderItem{item("a", 2, 50)} // subtotal 100
	tot := orders.ComputeTotals(items, orders.Discount{Mode: orders.DiscountPercent, Value: decimal.NewFromInt(10)})

	assert.True(t, tot.DiscountValue.Equal(decimal.NewFromInt(10)))
	assert.True(t, tot.DiscountPercent.Equal(decimal.NewFromInt(10)))
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(90)))
}

func TestComputeTotals_InvarianteTotal(t *testing.T) {
	items := []entity.OrderItem{item("a", 7, 3.30), item("b", 2, 12.75)}
	for _, d := range []orders.Discount{
		{Mode: orders.DiscountFlat, Value: decimal.NewFromFloat(4.5)},
		{Mode: orders.DiscountPercent, Value: decimal.NewFromInt(15)},
		{Mode: orders.DiscountFlat, Value: decimal.Zero},
	} {
		tot := orders.ComputeTotals(items, d)
		assert.True(t, tot.Total.Equal(tot.Subtotal.Sub(tot.DiscountValue)),
			"total == subtotal - descuento para %+v", d)
	}
}

func TestComputeTotals_SubtotalCero(t *testing.T) {
	// Con subtotal 0 el porcentaje derivado debe quedar en 0 (sin división).
	tot := orders.ComputeTotals(nil, orders.Discount{Mode: orders.DiscountFlat, Value: decimal.NewFromInt(5)})
	require.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.DiscountPercent.IsZero())
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(-5)))
}
