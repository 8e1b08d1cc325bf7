package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Stock es un contador entero
// modificado únicamente por el ledger de inventario (entradas de stock y
// reservas/devoluciones de pedidos); el ledger no impone piso, por lo que
// puede quedar negativo si una reserva excede la disponibilidad.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`     // precio de venta
	CostPrice   decimal.Decimal `json:"costPrice"` // costo de adquisición
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`      // base64 o URL
	SupplierID  string          `json:"supplierId,omitempty"` // proveedor vinculado
}
