package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Team equipo (propio o subcontratado) de instalación / entrega.
type Team struct {
	ID        string
	Name      string
	TeamType  string // installation, delivery, mixed
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceFeeBatch lote de honorarios a pagar a un equipo.
// DeductPercent nil significa "usar el porcentaje por defecto de la tienda".
type ServiceFeeBatch struct {
	ID            string
	TeamID        string
	LaborCost     decimal.Decimal
	MaterialCost  decimal.Decimal
	TravelCost    decimal.Decimal
	DeductPercent *decimal.Decimal
	Note          string
	Status        string
	Adjustments   []ServiceFeeAdjustment
	Payments      []ServiceFeePayment
	JobIDs        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServiceFeeAdjustment ajuste con signo (positivo suma, negativo descuenta).
type ServiceFeeAdjustment struct {
	ID           string
	ServiceFeeID string
	Amount       decimal.Decimal
	Note         string
	CreatedAt    time.Time
}

// ServiceFeePayment pago realizado al equipo.
type ServiceFeePayment struct {
	ID            string
	ServiceFeeID  string
	Amount        decimal.Decimal
	PaymentMethod string
	SlipURL       string
	Note          string
	PaidAt        time.Time
}
