package entity

import "github.com/shopspring/decimal"

// Promotion promoción con descuento porcentual. Se persiste como colección
// propia; los descuentos de un pedido se capturan igualmente en el pedido.
type Promotion struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Active          bool            `json:"active"`
}
