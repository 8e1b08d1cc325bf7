// Package metrics deriva las cifras de dashboard y reportes como funciones
// puras sobre las colecciones actuales. Nada se cachea ni se mantiene
// incrementalmente: cada lectura recalcula.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
)

// umbral de estoque bajo: stock < 5 cuenta; exactamente 5 no.
const lowStockThreshold = 5

// DashboardSummary cifras del panel principal.
type DashboardSummary struct {
	RealizedRevenue decimal.Decimal        `json:"realizedRevenue"` // delivered + completed + partially_delivered
	OpenOrders      int                    `json:"openOrders"`      // pending + partially_delivered
	LowStock        int                    `json:"lowStock"`        // productos con stock < 5
	TodaySales      int                    `json:"todaySales"`      // pedidos de hoy, sin cancelados
	UpcomingEvents  []entity.CalendarEvent `json:"upcomingEvents"`  // hoy y mañana
}

// Summary calcula el resumen del dashboard para el instante dado.
func Summary(orders []entity.Order, products []entity.Product, events []entity.CalendarEvent, now time.Time) DashboardSummary {
	revenue := decimal.Zero
	openOrders := 0
	todaySales := 0
	today := now.Format("2006-01-02")

	for _, o := range orders {
		if o.IsRealized() {
			revenue = revenue.Add(o.Total)
		}
		if o.IsOpen() {
			openOrders++
		}
		if o.Status != entity.StatusCanceled && o.Date.Format("2006-01-02") == today {
			todaySales++
		}
	}

	lowStock := 0
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			lowStock++
		}
	}

	return DashboardSummary{
		RealizedRevenue: revenue,
		OpenOrders:      openOrders,
		LowStock:        lowStock,
		TodaySales:      todaySales,
		UpcomingEvents:  UpcomingAgenda(events, now),
	}
}

// UpcomingAgenda devuelve los eventos cuya fecha es hoy o mañana (igualdad de
// cadena YYYY-MM-DD, no ventana de tiempo), ordenados ascendentemente.
func UpcomingAgenda(events []entity.CalendarEvent, now time.Time) []entity.CalendarEvent {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	var out []entity.CalendarEvent
	for _, e := range events {
		if e.Date == today || e.Date == tomorrow {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// MonthlyPoint total facturado de un mes calendario.
type MonthlyPoint struct {
	Month string          `json:"name"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

// MonthlyRevenue agrupa los pedidos no cancelados por prefijo año-mes de su
// fecha, sumando Total. Serie ordenada ascendente por mes.
func MonthlyRevenue(orders []entity.Order) []MonthlyPoint {
	byMonth := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o.Status == entity.StatusCanceled {
			continue
		}
		key := o.Date.Format("2006-01")
		byMonth[key] = byMonth[key].Add(o.Total)
	}

	out := make([]MonthlyPoint, 0, len(byMonth))
	for m, total := range byMonth {
		out = append(out, MonthlyPoint{Month: m, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ProductRank cantidad vendida acumulada de un producto (por nombre).
type ProductRank struct {
	Name     string `json:"name"`
	Quantity int    `json:"count"`
}

// TopProducts suma cantidades por nombre de producto sobre los pedidos no
// cancelados y devuelve los `limit` más vendidos. Orden estable: los empates
// conservan el orden de primera aparición.
func TopProducts(orders []entity.Order, limit int) []ProductRank {
	counts := make(map[string]int)
	var names []string // primera aparición, para desempate estable

	for _, o := range orders {
		if o.Status == entity.StatusCanceled {
			continue
		}
		for _, it := range o.Items {
			if _, seen := counts[it.ProductName]; !seen {
				names = append(names, it.ProductName)
			}
			counts[it.ProductName] += it.Quantity
		}
	}

	ranks := make([]ProductRank, 0, len(names))
	for _, n := range names {
		ranks = append(ranks, ProductRank{Name: n, Quantity: counts[n]})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Quantity > ranks[j].Quantity })

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// StockLevel nivel de stock actual de un producto.
type StockLevel struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// StockSnapshot una fila por producto con su stock actual.
func StockSnapshot(products []entity.Product) []StockLevel {
	out := make([]StockLevel, 0, len(products))
	for _, p := range products {
		out = append(out, StockLevel{ProductID: p.ID, Name: p.Name, Stock: p.Stock})
	}
	return out
}
