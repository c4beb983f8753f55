package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoneyOrZero es la única política de coerción numérica del motor: cualquier valor que no
// represente un número finito vale 0. Acepta números, strings numéricos, bool, json.Number y decimal.
// Los strings no admiten separadores de miles ("1,000" vale 0).
func ParseMoneyOrZero(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		f = parseString(x)
	case json.Number:
		f = parseString(string(x))
	case decimal.Decimal:
		f = x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return 0
		}
		f = x.InexactFloat64()
	default:
		return 0
	}
	return finiteOrZero(f)
}

// FromDecimal puente desde las columnas NUMERIC persistidas hacia el motor en float64.
func FromDecimal(d decimal.Decimal) float64 {
	return ParseMoneyOrZero(d)
}

func parseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Amount monto recibido por JSON. Acepta número, string numérico, bool o null y nunca falla:
// lo que no es un número finito se decodifica como 0.
type Amount float64

// UnmarshalJSON aplica ParseMoneyOrZero al valor crudo.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(ParseMoneyOrZero(raw))
	return nil
}

// Float64 valor como float64.
func (a Amount) Float64() float64 { return float64(a) }
