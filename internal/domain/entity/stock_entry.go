package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry registra una recepción de mercadería. Inmutable una vez creada;
// cada creación produce exactamente un delta positivo sobre su producto.
type StockEntry struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId"`
	SupplierID string          `json:"supplierId"`
	Quantity   int             `json:"quantity"`
	Date       time.Time       `json:"date"`
	Cost       decimal.Decimal `json:"cost"`
}
