package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jhoicas/decor-ops-api/pkg/money"
)

func TestFormat_SeparadoresYDosDecimales(t *testing.T) {
	f := money.NewFormatter(language.English)

	assert.Equal(t, "1,059.30", f.Format(1059.3))
	assert.Equal(t, "1,234,567.89", f.Format(1234567.891))
	assert.Equal(t, "0.00", f.Format(0))
}

func TestFormatBaht_Prefijo(t *testing.T) {
	f := money.NewFormatter(language.English)
	assert.Equal(t, "฿107.00", f.FormatBaht(107))
}

func TestRound2_NoFinitosSonCero(t *testing.T) {
	assert.Equal(t, 0.0, money.Round2(math.NaN()))
	assert.Equal(t, 0.0, money.Round2(math.Inf(1)))
	assert.Equal(t, 69.3, money.Round2(69.30000000000001))
}

func TestNewFormatterFromLocale_InvalidoUsaTailandes(t *testing.T) {
	f := money.NewFormatterFromLocale("%%%")
	assert.NotEmpty(t, f.Format(10))
}

func TestFormatRatePercent(t *testing.T) {
	assert.Equal(t, "7", money.FormatRatePercent(0.07))
	assert.Equal(t, "0", money.FormatRatePercent(0))
	assert.Equal(t, "2.5", money.FormatRatePercent(0.025))
	assert.Equal(t, "0", money.FormatRatePercent(math.NaN()))
}
