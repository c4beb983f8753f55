package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTeamRequest body para POST /api/teams.
type CreateTeamRequest struct {
	Name     string `json:"name"`
	TeamType string `json:"team_type,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UpdateTeamRequest body para PUT /api/teams/:id.
type UpdateTeamRequest = CreateTeamRequest

// TeamResponse equipo en respuestas.
type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamType  string    `json:"team_type,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateServiceFeeRequest body para POST /api/service-fees.
// DeductPercent nil usa el porcentaje por defecto de la tienda.
type CreateServiceFeeRequest struct {
	TeamID        string           `json:"team_id"`
	LaborCost     decimal.Decimal  `json:"labor_cost"`
	MaterialCost  decimal.Decimal  `json:"material_cost"`
	TravelCost    decimal.Decimal  `json:"travel_cost"`
	DeductPercent *decimal.Decimal `json:"deduct_percent,omitempty"`
	Note          string           `json:"note,omitempty"`
	JobIDs        []string         `json:"job_ids,omitempty"`
}

// AdjustmentRequest ajuste con signo.
type AdjustmentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// ServiceFeePaymentRequest pago al equipo.
type ServiceFeePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	SlipURL       string          `json:"slip_url,omitempty"`
	Note          string          `json:"note,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

// LinkJobsRequest body para PUT /api/service-fees/:id/jobs.
type LinkJobsRequest struct {
	JobIDs []string `json:"job_ids"`
}

// StatementLine línea del estado de cuenta.
type StatementLine struct {
	Date        time.Time       `json:"date"`
	Kind        string          `json:"kind"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// ServiceFeeResponse lote con totales y estado de cuenta.
type ServiceFeeResponse struct {
	ID                string          `json:"id"`
	TeamID            string          `json:"team_id"`
	LaborCost         decimal.Decimal `json:"labor_cost"`
	MaterialCost      decimal.Decimal `json:"material_cost"`
	TravelCost        decimal.Decimal `json:"travel_cost"`
	Note              string          `json:"note,omitempty"`
	Status            string          `json:"status"`
	JobIDs            []string        `json:"job_ids"`
	TotalBeforeDeduct decimal.Decimal `json:"total_before_deduct"`
	DeductPercent     decimal.Decimal `json:"deduct_percent"`
	DeductAmount      decimal.Decimal `json:"deduct_amount"`
	AdjustmentsTotal  decimal.Decimal `json:"adjustments_total"`
	TotalDue          decimal.Decimal `json:"total_due"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	Remaining         decimal.Decimal `json:"remaining"`
	Statement         []StatementLine `json:"statement,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// TeamOutstandingResponse saldo total adeudado al equipo.
type TeamOutstandingResponse struct {
	TeamID      string          `json:"team_id"`
	Batches     int             `json:"batches"`
	Outstanding decimal.Decimal `json:"outstanding"`
}
