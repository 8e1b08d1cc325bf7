package entity

import "github.com/shopspring/decimal"

// SalesGoal meta de venta mensual. Una sola meta por mes: guardar sobre un
// mes existente la reemplaza (upsert por Month).
type SalesGoal struct {
	ID              string          `json:"id"`
	Month           string          `json:"month"` // YYYY-MM
	WholesaleTarget decimal.Decimal `json:"wholesaleTarget"`
	RetailTarget    decimal.Decimal `json:"retailTarget"`
}
