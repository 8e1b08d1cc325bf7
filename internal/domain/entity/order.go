package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estados del ciclo de vida de un pedido.
type OrderStatus string

const (
	StatusPending            OrderStatus = "pending"
	StatusPartiallyDelivered OrderStatus = "partially_delivered"
	StatusDelivered          OrderStatus = "delivered"
	StatusCompleted          OrderStatus = "completed"
	StatusCanceled           OrderStatus = "canceled"
)

// OrderType tipo de venta. Los pedidos antiguos sin tipo cuentan como RETAIL.
type OrderType string

const (
	TypeWholesale OrderType = "WHOLESALE"
	TypeRetail    OrderType = "RETAIL"
)

// OrderItem línea de pedido con nombre y precio desnormalizados al momento
// de la creación. Total = Quantity × UnitPrice.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Order representa un pedido. Nunca se elimina físicamente: la cancelación es
// una transición de estado. Invariante: Total = Subtotal − DiscountValue.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerAddress Address         `json:"customerAddress"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountValue   decimal.Decimal `json:"discountValue"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Total           decimal.Decimal `json:"total"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status"`
	DeliveryNotes   string          `json:"deliveryNotes,omitempty"` // solo se anexa, nunca se sobreescribe
	Signature       string          `json:"signature,omitempty"`     // imagen base64
	OrderType       OrderType       `json:"orderType,omitempty"`
}

// EffectiveType devuelve el tipo del pedido tratando el valor vacío como
// RETAIL (compatibilidad con pedidos anteriores al campo).
func (o Order) EffectiveType() OrderType {
	if o.OrderType == "" {
		return TypeRetail
	}
	return o.OrderType
}

// IsRealized indica si el pedido cuenta para la receita realizada:
// delivered, completed o partially_delivered.
func (o Order) IsRealized() bool {
	switch o.Status {
	case StatusDelivered, StatusCompleted, StatusPartiallyDelivered:
		return true
	}
	return false
}

// IsOpen indica si el pedido sigue en curso (pending o partially_delivered).
func (o Order) IsOpen() bool {
	return o.Status == StatusPending || o.Status == StatusPartiallyDelivered
}
