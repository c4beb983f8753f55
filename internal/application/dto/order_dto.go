package dto

import (
	"time"

	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
)

// Los montos de entrada usan pricing.Amount: cualquier valor no numérico se toma como 0.

// DiscountRequest descuento del pedido.
type DiscountRequest struct {
	Mode  string         `json:"mode"` // percent | fixed | amount
	Value pricing.Amount `json:"value"`
}

// JobRequest trabajo a crear junto con la línea.
type JobRequest struct {
	Type        string     `json:"type"` // installation | delivery
	TeamID      string     `json:"team_id,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// OrderItemRequest línea del pedido.
type OrderItemRequest struct {
	ProductName string         `json:"product_name"`
	Description string         `json:"description,omitempty"`
	Qty         pricing.Amount `json:"qty"`
	UnitPrice   pricing.Amount `json:"unit_price"`
	Jobs        []JobRequest   `json:"jobs,omitempty"`
}

// PaymentRequest entrada del plan de pagos.
type PaymentRequest struct {
	Amount   pricing.Amount `json:"amount"`
	Method   string         `json:"method,omitempty"`
	DueDate  *time.Time     `json:"due_date,omitempty"`
	PaidDate *time.Time     `json:"paid_date,omitempty"`
	Note     string         `json:"note,omitempty"`
}

// CreateOrderRequest body para POST /api/orders.
// VATIncluded y VATRate nil toman el valor por defecto de la tienda.
type CreateOrderRequest struct {
	CustomerID  string             `json:"customer_id"`
	OrderDate   *time.Time         `json:"order_date,omitempty"`
	Items       []OrderItemRequest `json:"items"`
	Discount    DiscountRequest    `json:"discount"`
	ShippingFee pricing.Amount     `json:"shipping_fee"`
	VATIncluded *bool              `json:"vat_included,omitempty"`
	VATRate     *pricing.Amount    `json:"vat_rate,omitempty"`
	Payments    []PaymentRequest   `json:"payments,omitempty"`
	Note        string             `json:"note,omitempty"`
}

// SummaryPreviewRequest body para POST /api/orders/summary (sin persistir).
type SummaryPreviewRequest struct {
	Items            []OrderItemRequest `json:"items"`
	Discount         DiscountRequest    `json:"discount"`
	ShippingFee      pricing.Amount     `json:"shipping_fee"`
	VATIncluded      *bool              `json:"vat_included,omitempty"`
	VATRate          *pricing.Amount    `json:"vat_rate,omitempty"`
	Payments         []PaymentRequest   `json:"payments,omitempty"`
	OtherOutstanding []pricing.Amount   `json:"other_outstanding,omitempty"`
}

// SummaryResponse resumen financiero. Los montos van sin redondear; Formatted trae el texto para mostrar.
type SummaryResponse struct {
	Subtotal         float64           `json:"subtotal"`
	ShippingFee      float64           `json:"shipping_fee"`
	DiscountAmt      float64           `json:"discount_amt"`
	AfterDiscount    float64           `json:"after_discount"`
	PreVat           float64           `json:"pre_vat"`
	VatAmt           float64           `json:"vat_amt"`
	Total            float64           `json:"total"`
	TotalPaid        float64           `json:"total_paid"`
	Outstanding      float64           `json:"outstanding"`
	GrandOutstanding float64           `json:"grand_outstanding"`
	VATIncluded      bool              `json:"vat_included"`
	VATRate          float64           `json:"vat_rate"`
	Formatted        map[string]string `json:"formatted,omitempty"`
}

// JobResponse trabajo de una línea.
type JobResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	TeamID      string     `json:"team_id,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// OrderItemResponse línea en respuestas; Status es el derivado de sus trabajos.
type OrderItemResponse struct {
	ID          string        `json:"id"`
	ProductName string        `json:"product_name"`
	Description string        `json:"description,omitempty"`
	Qty         float64       `json:"qty"`
	UnitPrice   float64       `json:"unit_price"`
	LineTotal   float64       `json:"line_total"`
	Status      string        `json:"status"`
	Jobs        []JobResponse `json:"jobs"`
}

// PaymentResponse entrada del plan de pagos.
type PaymentResponse struct {
	ID       string     `json:"id"`
	Amount   float64    `json:"amount"`
	Method   string     `json:"method,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	PaidDate *time.Time `json:"paid_date,omitempty"`
	Note     string     `json:"note,omitempty"`
}

// OrderResponse pedido completo con resumen calculado.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	OrderNumber string              `json:"order_number"`
	OrderDate   time.Time           `json:"order_date"`
	Status      string              `json:"status"`
	Note        string              `json:"note,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	Payments    []PaymentResponse   `json:"payments"`
	Summary     SummaryResponse     `json:"summary"`
}

// OutstandingResponse saldo del pedido y del cliente.
type OutstandingResponse struct {
	OrderID                string  `json:"order_id"`
	CustomerID             string  `json:"customer_id"`
	Outstanding            float64 `json:"outstanding"`
	OtherOrdersOutstanding float64 `json:"other_orders_outstanding"`
	GrandOutstanding       float64 `json:"grand_outstanding"`
}

// UpdateJobStatusRequest body para PATCH /api/orders/:id/jobs/:jobId/status.
type UpdateJobStatusRequest struct {
	Status string `json:"status"`
}
