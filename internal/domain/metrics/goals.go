package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
)

// trailingMonths meses del histórico de metas: el mes en curso y los 5 previos.
const trailingMonths = 6

// GoalProgress comparación meta vs. realizado de un mes.
type GoalProgress struct {
	Month           string          `json:"month"` // YYYY-MM
	RetailTarget    decimal.Decimal `json:"retailTarget"`
	RetailActual    decimal.Decimal `json:"retailActual"`
	RetailMet       bool            `json:"retailMet"`
	WholesaleTarget decimal.Decimal `json:"wholesaleTarget"`
	WholesaleActual decimal.Decimal `json:"wholesaleActual"`
	WholesaleMet    bool            `json:"wholesaleMet"`
}

// Actuals suma el total de los pedidos no cancelados del mes, separados por
// tipo: RETAIL (o sin tipo) y WHOLESALE.
func Actuals(orders []entity.Order, month string) (retail, wholesale decimal.Decimal) {
	for _, o := range orders {
		if o.Status == entity.StatusCanceled || o.Date.Format("2006-01") != month {
			continue
		}
		if o.EffectiveType() == entity.TypeWholesale {
			wholesale = wholesale.Add(o.Total)
		} else {
			retail = retail.Add(o.Total)
		}
	}
	return retail, wholesale
}

// Progress compara las metas del mes contra lo realizado. Sin meta definida
// los objetivos quedan en 0; la meta se considera batida cuando el realizado
// alcanza un objetivo mayor que cero.
func Progress(goals []entity.SalesGoal, orders []entity.Order, month string) GoalProgress {
	var retailTarget, wholesaleTarget decimal.Decimal
	for _, g := range goals {
		if g.Month == month {
			retailTarget = g.RetailTarget
			wholesaleTarget = g.WholesaleTarget
			break
		}
	}
	retail, wholesale := Actuals(orders, month)

	return GoalProgress{
		Month:           month,
		RetailTarget:    retailTarget,
		RetailActual:    retail,
		RetailMet:       goalMet(retail, retailTarget),
		WholesaleTarget: wholesaleTarget,
		WholesaleActual: wholesale,
		WholesaleMet:    goalMet(wholesale, wholesaleTarget),
	}
}

func goalMet(actual, target decimal.Decimal) bool {
	return target.IsPositive() && actual.GreaterThanOrEqual(target)
}

// Trend produce la ventana móvil de 6 meses (mes en curso y 5 anteriores),
// un punto por mes calendario exista o no meta/pedido ese mes (relleno con
// ceros), del más antiguo al más reciente.
func Trend(goals []entity.SalesGoal, orders []entity.Order, now time.Time) []GoalProgress {
	// anclar al día 1 evita el desborde de AddDate en fin de mes
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := make([]GoalProgress, 0, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Format("2006-01")
		out = append(out, Progress(goals, orders, month))
	}
	return out
}
