package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/metrics"
)

var ahora = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

func pedido(status entity.OrderStatus, total float64, date time.Time) entity.Order {
	return entity.Order{Status: status, Total: decimal.NewFromFloat(total), Date: date}
}

func TestSummary_ReceitaRealizada(t *testing.T) {
	orders := []entity.Order{
		pedido(entity.StatusDelivered, 100, ahora),
		pedido(entity.StatusCompleted, 50, ahora),
		// una entrega parcial aporta su total COMPLETO a la receita
		pedido(entity.StatusPartiallyDelivered, 30, ahora),
		// pending y canceled no aportan nada
		pedido(entity.StatusPending, 999, ahora),
		pedido(entity.StatusCanceled, 999, ahora),
	}

	s := metrics.Summary(orders, nil, nil, ahora)
	assert.True(t, s.RealizedRevenue.Equal(decimal.NewFromInt(180)),
		"receita=%s", s.RealizedRevenue)
}

func TestSummary_PedidosAbiertosYVentasDeHoy(t *testing.T) {
	ayer := ahora.AddDate(0, 0, -1)
	orders := []entity.Order{
		pedido(entity.StatusPending, 10, ahora),
		pedido(entity.StatusPartiallyDelivered, 10, ahora),
		pedido(entity.StatusDelivered, 10, ahora),
		pedido(entity.StatusCanceled, 10, ahora), // cancelado no cuenta como venta de hoy
		pedido(entity.StatusPending, 10, ayer),   // abierto pero de ayer
	}

	s := metrics.Summary(orders, nil, nil, ahora)
	assert.Equal(t, 3, s.OpenOrders)
	assert.Equal(t, 3, s.TodaySales)
}

func TestSummary_EstoqueBajoEsEstricto(t *testing.T) {
	products := []entity.Product{
		{ID: "a", Stock: 0},
		{ID: "b", Stock: 4},
		{ID: "c", Stock: 5}, // frontera: exactamente 5 NO es bajo
		{ID: "d", Stock: -2},
	}
	s := metrics.Summary(nil, products, nil, ahora)
	assert.Equal(t, 3, s.LowStock)
}

func TestUpcomingAgenda_HoyYManana(t *testing.T) {
	events := []entity.CalendarEvent{
		{ID: "1", Date: "2026-08-31", Title: "entrega"},
		{ID: "2", Date: "2026-08-30", Title: "visita"},
		{ID: "3", Date: "2026-09-05", Title: "lejana"},
		{ID: "4", Date: "2026-08-29", Title: "pasada"},
	}

	out := metrics.UpcomingAgenda(events, ahora)
	require.Len(t, out, 2)
	// orden ascendente por fecha
	assert.Equal(t, "2", out[0].ID)
	assert.Equal(t, "1", out[1].ID)
}

func TestMonthlyRevenue_AgrupaPorMesSinCancelados(t *testing.T) {
	julio := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		pedido(entity.StatusDelivered, 100, julio),
		pedido(entity.StatusPending, 20, julio), // pending sí entra en la serie mensual
		pedido(entity.StatusDelivered, 50, ahora),
		pedido(entity.StatusCanceled, 500, ahora),
	}

	serie := metrics.MonthlyRevenue(orders)
	require.Len(t, serie, 2)
	assert.Equal(t, "2026-07", serie[0].Month)
	assert.True(t, serie[0].Total.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "2026-08", serie[1].Month)
	assert.True(t, serie[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestTopProducts_RankingYEmpates(t *testing.T) {
	orders := []entity.Order{
		{Status: entity.StatusDelivered, Items: []entity.OrderItem{
			{ProductName: "Widget", Quantity: 2},
		}},
		{Status: entity.StatusPending, Items: []entity.OrderItem{
			{ProductName: "Widget", Quantity: 5},
			{ProductName: "Gadget", Quantity: 1},
		}},
		{Status: entity.StatusCanceled, Items: []entity.OrderItem{
			{ProductName: "Gadget", Quantity: 100}, // cancelado: ignorado
		}},
	}

	top := metrics.TopProducts(orders, 10)
	require.Len(t, top, 2)
	assert.Equal(t, metrics.ProductRank{Name: "Widget", Quantity: 7}, top[0])
	assert.Equal(t, metrics.ProductRank{Name: "Gadget", Quantity: 1}, top[1])
}

func TestTopProducts_LimiteYOrdenEstable(t *testing.T) {
	var orders []entity.Order
	// 12 productos con la misma cantidad: el desempate es el orden de aparición
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		orders = append(orders, entity.Order{
			Status: entity.StatusDelivered,
			Items:  []entity.OrderItem{{ProductName: n, Quantity: 3}},
		})
	}

	top := metrics.TopProducts(orders, 10)
	require.Len(t, top, 10)
	assert.Equal(t, "a", top[0].Name)
	assert.Equal(t, "j", top[9].Name)
}

func TestStockSnapshot(t *testing.T) {
	products := []entity.Product{
		{ID: "a", Name: "Widget", Stock: 7},
		{ID: "b", Name: "Gadget", Stock: -1},
	}
	rows := metrics.StockSnapshot(products)
	require.Len(t, rows, 2)
	assert.Equal(t, metrics.StockLevel{ProductID: "b", Name: "Gadget", Stock: -1}, rows[1])
}
