package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de descuento del pedido.
const (
	DiscountModePercent = "percent"
	DiscountModeFixed   = "fixed"
)

// Estados derivados del pedido.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// Order cabecera de un pedido de venta.
type Order struct {
	ID            string
	CustomerID    string
	OrderNumber   string
	OrderDate     time.Time
	DiscountMode  string
	DiscountValue decimal.Decimal
	ShippingFee   decimal.Decimal
	VATIncluded   bool
	VATRate       decimal.Decimal // fracción, 0.07
	Status        string
	Note          string
	Items         []OrderItem
	Payments      []OrderPayment
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem línea del pedido.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductName string
	Description string
	Qty         decimal.Decimal
	UnitPrice   decimal.Decimal
	Status      string // opcional; si está vacío se deriva de Jobs
	Jobs        []Job
}

// OrderPayment entrada del plan de pagos.
type OrderPayment struct {
	ID        string
	OrderID   string
	Amount    decimal.Decimal
	Method    string
	DueDate   *time.Time
	PaidDate  *time.Time
	Note      string
	CreatedAt time.Time
}
