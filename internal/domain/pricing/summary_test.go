package pricing_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
)

const tol = 1e-9

func TestComputeSummary_EscenarioExVat(t *testing.T) {
	s := pricing.ComputeSummary(
		[]pricing.LineItem{{Qty: 2, UnitPrice: 500}},
		pricing.Discount{Mode: pricing.ModePercent, Value: 10},
		100, false, 0.07,
	)

	assert.InDelta(t, 1000, s.Subtotal, tol)
	assert.InDelta(t, 110, s.DiscountAmt, tol)
	assert.InDelta(t, 990, s.AfterDiscount, tol)
	assert.InDelta(t, 990, s.PreVat, tol)
	assert.InDelta(t, 69.3, s.VatAmt, tol)
	assert.InDelta(t, 1059.3, s.Total, tol)
	assert.InDelta(t, 1059.3, s.Outstanding, tol)
}

func TestComputeSummary_SubtotalEsSumaDeLineas(t *testing.T) {
	items := []pricing.LineItem{
		{Qty: 3, UnitPrice: 120.5},
		{Qty: 0, UnitPrice: 999},
		{Qty: 1.5, UnitPrice: 40},
	}
	s := pricing.ComputeSummary(items, pricing.Discount{}, 0, false, 0)

	assert.InDelta(t, 3*120.5+1.5*40, s.Subtotal, tol)
	assert.GreaterOrEqual(t, s.Subtotal, 0.0)
}

func TestComputeSummary_ValoresNoFinitosCuentanCero(t *testing.T) {
	items := []pricing.LineItem{
		{Qty: math.NaN(), UnitPrice: 100},
		{Qty: 2, UnitPrice: math.Inf(1)},
		{Qty: 1, UnitPrice: 50},
	}
	s := pricing.ComputeSummary(items, pricing.Discount{Mode: pricing.ModeFixed, Value: math.NaN()}, math.Inf(-1), false, 0.07)

	assert.InDelta(t, 50, s.Subtotal, tol)
	assert.InDelta(t, 0, s.DiscountAmt, tol)
	assert.InDelta(t, 0, s.ShippingFee, tol)
	assert.InDelta(t, 53.5, s.Total, tol)
}

func TestComputeSummary_DescuentoMayorQueBaseNoEsNegativo(t *testing.T) {
	items := []pricing.LineItem{{Qty: 1, UnitPrice: 100}}

	cases := []pricing.Discount{
		{Mode: pricing.ModeFixed, Value: 500},
		{Mode: pricing.ModeAmount, Value: 120.01},
		{Mode: pricing.ModePercent, Value: 150},
	}
	for _, d := range cases {
		for _, included := range []bool{true, false} {
			s := pricing.ComputeSummary(items, d, 10, included, 0.07)
			require.Greater(t, s.DiscountAmt, s.Subtotal+s.ShippingFee)
			assert.Equal(t, 0.0, s.AfterDiscount)
			assert.Equal(t, 0.0, s.Total)
			assert.Equal(t, 0.0, s.VatAmt)
		}
	}
}

func TestComputeSummary_DescuentoFijoIgnoraEnvio(t *testing.T) {
	s := pricing.ComputeSummary([]pricing.LineItem{{Qty: 1, UnitPrice: 1000}}, pricing.Discount{Mode: pricing.ModeFixed, Value: 100}, 200, false, 0)
	assert.InDelta(t, 100, s.DiscountAmt, tol)
	assert.InDelta(t, 1100, s.Total, tol)
}

func TestComputeSummary_ModoDesconocidoEsMontoFijo(t *testing.T) {
	s := pricing.ComputeSummary([]pricing.LineItem{{Qty: 1, UnitPrice: 1000}}, pricing.Discount{Mode: "", Value: 50}, 0, false, 0)
	assert.InDelta(t, 50, s.DiscountAmt, tol)
}

func TestComputeSummary_AlternarIvaIncluido(t *testing.T) {
	items := []pricing.LineItem{{Qty: 4, UnitPrice: 250}}

	in := pricing.ComputeSummary(items, pricing.Discount{}, 0, true, 0.07)
	ex := pricing.ComputeSummary(items, pricing.Discount{}, 0, false, 0.07)

	require.InDelta(t, in.AfterDiscount, ex.AfterDiscount, tol)
	assert.InDelta(t, in.AfterDiscount, in.Total, tol)
	assert.InDelta(t, ex.AfterDiscount*1.07, ex.Total, tol)
}

func TestComputeSummary_IdaYVueltaEntreConvenciones(t *testing.T) {
	ex := pricing.ComputeSummary([]pricing.LineItem{{Qty: 1, UnitPrice: 100}}, pricing.Discount{}, 0, false, 0.07)
	require.InDelta(t, 100, ex.PreVat, tol)
	require.InDelta(t, 7, ex.VatAmt, tol)
	require.InDelta(t, 107, ex.Total, tol)

	in := pricing.ComputeSummary([]pricing.LineItem{{Qty: 1, UnitPrice: ex.Total}}, pricing.Discount{}, 0, true, 0.07)
	assert.InDelta(t, 107, in.Total, tol)
	assert.InDelta(t, 100, in.PreVat, tol)
	assert.InDelta(t, 7, in.VatAmt, tol)
}

func TestComputeSummary_TasaCeroSinIva(t *testing.T) {
	items := []pricing.LineItem{{Qty: 1, UnitPrice: 300}}
	for _, included := range []bool{true, false} {
		s := pricing.ComputeSummary(items, pricing.Discount{}, 0, included, 0)
		assert.Equal(t, 0.0, s.VatAmt)
		assert.InDelta(t, 300, s.Total, tol)
		assert.InDelta(t, 300, s.PreVat, tol)
	}
}

func TestComputeSummary_SinLineas(t *testing.T) {
	s := pricing.ComputeSummary(nil, pricing.Discount{Mode: pricing.ModePercent, Value: 10}, 0, false, 0.07)
	assert.Equal(t, pricing.Summary{VATRate: 0.07}, s)
}

func TestWithPayments_SaldoNuncaNegativo(t *testing.T) {
	s := pricing.ComputeSummary([]pricing.LineItem{{Qty: 1, UnitPrice: 1000}}, pricing.Discount{}, 0, false, 0.07)

	over := s.WithPayments([]pricing.Payment{{Amount: 800}, {Amount: 300}})
	assert.InDelta(t, 1100, over.TotalPaid, tol)
	assert.Equal(t, 0.0, over.Outstanding)

	partial := s.WithPayments([]pricing.Payment{{Amount: 500}, {Amount: math.NaN()}})
	assert.InDelta(t, 500, partial.TotalPaid, tol)
	assert.InDelta(t, 570, partial.Outstanding, tol)

	assert.InDelta(t, 0, s.TotalPaid, tol, "WithPayments no modifica el receptor")
}

func TestGrandOutstanding_EsAditivo(t *testing.T) {
	assert.InDelta(t, 600, pricing.GrandOutstanding(100, 200, 300), tol)
	assert.InDelta(t, 100, pricing.GrandOutstanding(100), tol)
	assert.InDelta(t, 100, pricing.GrandOutstanding(100, math.NaN()), tol)
}

func TestTotals_SeparaPagadoDeProgramado(t *testing.T) {
	now := time.Now()
	due := now.AddDate(0, 1, 0)

	got := pricing.Totals([]pricing.Payment{
		{Amount: 500, PaidDate: &now},
		{Amount: 300, DueDate: &due},
		{Amount: 200},
	})

	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 500, got.TotalPaid, tol)
	assert.InDelta(t, 800, got.TotalScheduled, tol)
}
