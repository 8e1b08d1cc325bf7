package dto

import "github.com/shopspring/decimal"

// CartLine línea del carrito al crear o editar un pedido. El precio unitario
// se toma del catálogo en el momento de la operación, no del cliente.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SaveOrderRequest payload de creación y edición de pedidos. DiscountMode es
// "value" (monto fijo) o "percent"; DiscountValue se interpreta según el modo.
type SaveOrderRequest struct {
	CustomerID    string          `json:"customerId"`
	Items         []CartLine      `json:"items"`
	DiscountMode  string          `json:"discountMode"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Signature     string          `json:"signature,omitempty"`
	OrderType     string          `json:"orderType,omitempty"` // WHOLESALE | RETAIL
}

// UpdateOrderStatusRequest transición de estado con nota de entrega opcional.
type UpdateOrderStatusRequest struct {
	Status       string `json:"status"`
	DeliveryNote string `json:"deliveryNote,omitempty"`
}
