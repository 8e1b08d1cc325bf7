// Package orders contiene las reglas puras del ciclo de vida de pedidos:
// cálculo de totales con descuento y máquina de estados.
package orders

import (
	"github.com/shopspring/decimal"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
)

// Modos de descuento: monto fijo o porcentaje del subtotal.
const (
	DiscountFlat    = "value"
	DiscountPercent = "percent"
)

var hundred = decimal.NewFromInt(100)

// Discount especifica el descuento ingresado por el usuario.
type Discount struct {
	Mode  string          // DiscountFlat o DiscountPercent
	Value decimal.Decimal // monto en moneda o porcentaje según Mode
}

// Totals resultado del cálculo de precios de un carrito.
type Totals struct {
	Subtotal        decimal.Decimal
	DiscountValue   decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal
}

// LineTotal calcula el total de una línea: cantidad × precio unitario.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals calcula subtotal, descuento (en ambas representaciones) y
// total. Se guardan valor y porcentaje, derivando el que falte del modo
// ingresado; con subtotal cero el porcentaje queda en 0.
func ComputeTotals(items []entity.OrderItem, d Discount) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}

	var value, percent decimal.Decimal
	switch d.Mode {
	case DiscountPercent:
		percent = d.Value
		value = subtotal.Mul(d.Value).Div(hundred)
	default: // DiscountFlat
		value = d.Value
		if subtotal.IsPositive() {
			percent = d.Value.Mul(hundred).Div(subtotal)
		}
	}

	return Totals{
		Subtotal:        subtotal,
		DiscountValue:   value,
		DiscountPercent: percent,
		Total:           subtotal.Sub(value),
	}
}
