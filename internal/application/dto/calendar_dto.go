package dto

import "github.com/shopspring/decimal"

// SaveEventRequest payload de alta y edición de eventos de agenda.
type SaveEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Type        string `json:"type"` // VISIT | DELIVERY | OTHER
	RelatedID   string `json:"relatedId,omitempty"`
	RelatedName string `json:"relatedName,omitempty"`
}

// SaveGoalRequest upsert de la meta de venta de un mes.
type SaveGoalRequest struct {
	Month           string          `json:"month"` // YYYY-MM
	WholesaleTarget decimal.Decimal `json:"wholesaleTarget"`
	RetailTarget    decimal.Decimal `json:"retailTarget"`
}
