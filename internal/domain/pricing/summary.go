// Package pricing calcula el resumen financiero de un pedido: subtotal, descuento, IVA (incluido o
// agregado), pagado y saldo. Funciones puras en float64, sin redondeo interno; el redondeo ocurre
// solo al formatear (pkg/money).
package pricing

import "time"

// Modos de descuento. Cualquier modo distinto de ModePercent se trata como monto fijo.
const (
	ModePercent = "percent"
	ModeFixed   = "fixed"
	ModeAmount  = "amount"
)

// LineItem cantidad y precio unitario de una línea.
type LineItem struct {
	Qty       float64
	UnitPrice float64
}

// Discount descuento del pedido.
type Discount struct {
	Mode  string
	Value float64
}

// Payment entrada del plan de pagos.
type Payment struct {
	Amount   float64
	DueDate  *time.Time
	PaidDate *time.Time
	Method   string
}

// Summary resultado del cálculo. Sin pagos aplicados, Outstanding es igual a Total.
type Summary struct {
	Subtotal      float64
	ShippingFee   float64
	DiscountAmt   float64
	AfterDiscount float64
	PreVat        float64
	VatAmt        float64
	Total         float64
	TotalPaid     float64
	Outstanding   float64
	VATIncluded   bool
	VATRate       float64
}

// ComputeSummary calcula el resumen del pedido.
//
// Con IVA incluido el total es el monto tras descuento y la base se deriva hacia atrás
// (total / (1+tasa)); con IVA agregado la base es el monto tras descuento y el total crece.
// Una tasa <= 0 significa sin IVA en ambos modos.
func ComputeSummary(items []LineItem, discount Discount, shippingFee float64, vatIncluded bool, vatRate float64) Summary {
	shippingFee = finiteOrZero(shippingFee)
	vatRate = finiteOrZero(vatRate)

	var subtotal float64
	for _, it := range items {
		subtotal += finiteOrZero(it.Qty) * finiteOrZero(it.UnitPrice)
	}

	value := finiteOrZero(discount.Value)
	discountAmt := value
	if discount.Mode == ModePercent {
		discountAmt = (subtotal + shippingFee) * (value / 100)
	}

	afterDiscount := max(0, subtotal+shippingFee-discountAmt)

	s := Summary{
		Subtotal:      subtotal,
		ShippingFee:   shippingFee,
		DiscountAmt:   discountAmt,
		AfterDiscount: afterDiscount,
		VATIncluded:   vatIncluded,
		VATRate:       vatRate,
	}

	switch {
	case vatRate <= 0:
		s.PreVat = afterDiscount
		s.VatAmt = 0
		s.Total = afterDiscount
	case vatIncluded:
		s.Total = afterDiscount
		s.PreVat = s.Total / (1 + vatRate)
		s.VatAmt = s.Total - s.PreVat
	default:
		s.PreVat = afterDiscount
		s.VatAmt = s.PreVat * vatRate
		s.Total = s.PreVat + s.VatAmt
	}

	s.Outstanding = s.Total
	return s
}

// WithPayments devuelve una copia con TotalPaid y Outstanding (saldo nunca negativo).
func (s Summary) WithPayments(payments []Payment) Summary {
	s.TotalPaid = SumPayments(payments)
	s.Outstanding = max(0, s.Total-s.TotalPaid)
	return s
}

// SumPayments suma los montos del plan de pagos.
func SumPayments(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += finiteOrZero(p.Amount)
	}
	return total
}

// GrandOutstanding saldo del pedido actual más los saldos de los demás pedidos del cliente.
func GrandOutstanding(current float64, others ...float64) float64 {
	total := finiteOrZero(current)
	for _, o := range others {
		total += finiteOrZero(o)
	}
	return total
}

// PaymentTotals agregados del plan de pagos.
type PaymentTotals struct {
	TotalPaid      float64 // suma de entradas con fecha de pago
	TotalScheduled float64 // suma de entradas con fecha de vencimiento o de pago
	Count          int
}

// Totals agrega el plan de pagos separando lo efectivamente pagado de lo programado.
func Totals(payments []Payment) PaymentTotals {
	var t PaymentTotals
	for _, p := range payments {
		amt := finiteOrZero(p.Amount)
		t.Count++
		if p.PaidDate != nil {
			t.TotalPaid += amt
		}
		if p.PaidDate != nil || p.DueDate != nil {
			t.TotalScheduled += amt
		}
	}
	return t
}
