package entity

// EventType tipo de evento de agenda.
type EventType string

const (
	EventVisit    EventType = "VISIT"
	EventDelivery EventType = "DELIVERY"
	EventOther    EventType = "OTHER"
)

// CalendarEvent evento de la agenda de visitas y entregas. Date tiene
// granularidad de día (YYYY-MM-DD) y se compara por igualdad de cadena,
// no por ventanas de tiempo.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Type        EventType `json:"type"`
	RelatedID   string    `json:"relatedId,omitempty"`   // cliente o proveedor
	RelatedName string    `json:"relatedName,omitempty"` // nombre desnormalizado
}
