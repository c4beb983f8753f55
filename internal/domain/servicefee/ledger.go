// Package servicefee calcula el estado de cuenta de los lotes de honorarios de equipos.
// A diferencia del motor de pedidos, aquí se usa aritmética decimal: los montos se liquidan al equipo.
package servicefee

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Tipos de línea del estado de cuenta.
const (
	LineBase       = "base"
	LineDeduct     = "deduct"
	LineAdjustment = "adjustment"
	LinePayment    = "payment"
)

// Totals resumen de un lote.
type Totals struct {
	TotalBeforeDeduct decimal.Decimal // mano de obra + material + traslado
	DeductPercent     decimal.Decimal
	DeductAmount      decimal.Decimal
	AdjustmentsTotal  decimal.Decimal
	TotalDue          decimal.Decimal
	TotalPaid         decimal.Decimal
	Remaining         decimal.Decimal // puede ser negativo si se pagó de más
}

// Line movimiento del estado de cuenta con saldo acumulado.
type Line struct {
	Date        time.Time
	Kind        string
	Description string
	Amount      decimal.Decimal // con signo: positivo aumenta lo adeudado al equipo
	Balance     decimal.Decimal
}

// EffectiveDeductPercent porcentaje del lote o, si no está definido, el de la tienda.
// Un 0 explícito se respeta.
func EffectiveDeductPercent(b *entity.ServiceFeeBatch, defaultPct decimal.Decimal) decimal.Decimal {
	if b.DeductPercent != nil {
		return *b.DeductPercent
	}
	return defaultPct
}

// Compute calcula los totales del lote.
func Compute(b *entity.ServiceFeeBatch, defaultPct decimal.Decimal) Totals {
	base := b.LaborCost.Add(b.MaterialCost).Add(b.TravelCost)
	pct := EffectiveDeductPercent(b, defaultPct)
	deduct := base.Mul(pct).Div(hundred)

	adj := decimal.Zero
	for _, a := range b.Adjustments {
		adj = adj.Add(a.Amount)
	}
	paid := decimal.Zero
	for _, p := range b.Payments {
		paid = paid.Add(p.Amount)
	}

	due := base.Sub(deduct).Add(adj)
	return Totals{
		TotalBeforeDeduct: base,
		DeductPercent:     pct,
		DeductAmount:      deduct,
		AdjustmentsTotal:  adj,
		TotalDue:          due,
		TotalPaid:         paid,
		Remaining:         due.Sub(paid),
	}
}

// Statement arma el estado de cuenta: base y deducción a la fecha del lote, luego ajustes y pagos
// en orden cronológico. El saldo de la última línea es igual a Totals.Remaining.
func Statement(b *entity.ServiceFeeBatch, defaultPct decimal.Decimal) []Line {
	t := Compute(b, defaultPct)

	lines := []Line{
		{Date: b.CreatedAt, Kind: LineBase, Description: "mano de obra + material + traslado", Amount: t.TotalBeforeDeduct},
		{Date: b.CreatedAt, Kind: LineDeduct, Description: "retención " + t.DeductPercent.String() + "%", Amount: t.DeductAmount.Neg()},
	}

	movements := make([]Line, 0, len(b.Adjustments)+len(b.Payments))
	for _, a := range b.Adjustments {
		movements = append(movements, Line{Date: a.CreatedAt, Kind: LineAdjustment, Description: a.Note, Amount: a.Amount})
	}
	for _, p := range b.Payments {
		movements = append(movements, Line{Date: p.PaidAt, Kind: LinePayment, Description: p.PaymentMethod, Amount: p.Amount.Neg()})
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.Before(movements[j].Date)
	})
	lines = append(lines, movements...)

	balance := decimal.Zero
	for i := range lines {
		balance = balance.Add(lines[i].Amount)
		lines[i].Balance = balance
	}
	return lines
}

// TeamOutstanding suma de saldos pendientes de todos los lotes del equipo.
func TeamOutstanding(batches []*entity.ServiceFeeBatch, defaultPct decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range batches {
		total = total.Add(Compute(b, defaultPct).Remaining)
	}
	return total
}
