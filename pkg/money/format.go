// Package money formatea montos para mostrar en pantalla, PDF y respuestas.
// Es el único punto donde se redondea: los cálculos internos trabajan en float64 sin redondeo.
package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// BahtSymbol prefijo de moneda usado en documentos.
const BahtSymbol = "฿"

// Formatter formatea montos con separadores de miles según el locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter construye un Formatter para la etiqueta de idioma indicada.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// NewFormatterFromLocale acepta una etiqueta BCP 47 ("th", "en-US"); si es inválida usa tailandés.
func NewFormatterFromLocale(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Thai
	}
	return NewFormatter(tag)
}

// Format redondea a 2 decimales (half away from zero) y agrega separadores de miles.
func (f *Formatter) Format(amount float64) string {
	rounded := Round2(amount)
	return f.printer.Sprintf("%v", number.Decimal(rounded, number.Scale(2)))
}

// FormatBaht igual que Format con prefijo ฿.
func (f *Formatter) FormatBaht(amount float64) string {
	return BahtSymbol + f.Format(amount)
}

// Round2 redondea a 2 decimales; NaN e Inf se tratan como 0.
func Round2(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// FormatRatePercent convierte una fracción (0.07) en texto de porcentaje sin ceros de más ("7").
func FormatRatePercent(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return "0"
	}
	return decimal.NewFromFloat(rate).Shift(2).Round(2).String()
}
