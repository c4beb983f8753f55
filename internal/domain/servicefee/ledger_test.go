package servicefee_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/servicefee"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func batch() *entity.ServiceFeeBatch {
	t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &entity.ServiceFeeBatch{
		ID:           "b1",
		TeamID:       "t1",
		LaborCost:    dec("8000"),
		MaterialCost: dec("1500"),
		TravelCost:   dec("500"),
		CreatedAt:    t0,
		Adjustments: []entity.ServiceFeeAdjustment{
			{ID: "a2", Amount: dec("-200"), Note: "material devuelto", CreatedAt: t0.Add(72 * time.Hour)},
			{ID: "a1", Amount: dec("300"), Note: "trabajo extra", CreatedAt: t0.Add(24 * time.Hour)},
		},
		Payments: []entity.ServiceFeePayment{
			{ID: "p1", Amount: dec("5000"), PaymentMethod: "transfer", PaidAt: t0.Add(48 * time.Hour)},
		},
	}
}

func TestCompute_PorcentajePorDefecto(t *testing.T) {
	got := servicefee.Compute(batch(), dec("3"))

	assert.True(t, dec("10000").Equal(got.TotalBeforeDeduct))
	assert.True(t, dec("3").Equal(got.DeductPercent))
	assert.True(t, dec("300").Equal(got.DeductAmount))
	assert.True(t, dec("100").Equal(got.AdjustmentsTotal))
	assert.True(t, dec("9800").Equal(got.TotalDue))
	assert.True(t, dec("5000").Equal(got.TotalPaid))
	assert.True(t, dec("4800").Equal(got.Remaining))
}

func TestCompute_CeroExplicitoSeRespeta(t *testing.T) {
	b := batch()
	zero := decimal.Zero
	b.DeductPercent = &zero

	got := servicefee.Compute(b, dec("3"))

	assert.True(t, got.DeductAmount.IsZero())
	assert.True(t, dec("10100").Equal(got.TotalDue))
}

func TestCompute_SaldoPuedeSerNegativo(t *testing.T) {
	b := batch()
	b.Payments = append(b.Payments, entity.ServiceFeePayment{Amount: dec("6000")})

	got := servicefee.Compute(b, dec("3"))
	assert.True(t, dec("-1200").Equal(got.Remaining), got.Remaining.String())
}

func TestStatement_OrdenCronologicoYSaldoFinal(t *testing.T) {
	b := batch()
	lines := servicefee.Statement(b, dec("3"))

	require.Len(t, lines, 5)
	kinds := make([]string, len(lines))
	for i, l := range lines {
		kinds[i] = l.Kind
	}
	assert.Equal(t, []string{
		servicefee.LineBase, servicefee.LineDeduct,
		servicefee.LineAdjustment, servicefee.LinePayment, servicefee.LineAdjustment,
	}, kinds)

	assert.True(t, dec("10000").Equal(lines[0].Balance))
	assert.True(t, dec("9700").Equal(lines[1].Balance))
	assert.True(t, dec("10000").Equal(lines[2].Balance))
	assert.True(t, dec("5000").Equal(lines[3].Balance))
	assert.True(t, servicefee.Compute(b, dec("3")).Remaining.Equal(lines[4].Balance))
}

func TestTeamOutstanding_SumaLotes(t *testing.T) {
	other := &entity.ServiceFeeBatch{LaborCost: dec("1000")}
	got := servicefee.TeamOutstanding([]*entity.ServiceFeeBatch{batch(), other}, dec("3"))

	assert.True(t, dec("5770").Equal(got), got.String())
	assert.True(t, servicefee.TeamOutstanding(nil, dec("3")).IsZero())
}
