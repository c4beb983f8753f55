package entity

import "time"

// Tipos de trabajo asociados a una línea de pedido.
const (
	JobTypeInstallation = "installation"
	JobTypeDelivery     = "delivery"
)

// Estados de trabajo (se aceptan también los equivalentes en tailandés).
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job trabajo de instalación o entrega de una línea de pedido.
type Job struct {
	ID          string
	OrderItemID string
	Type        string
	Status      string
	TeamID      string
	ScheduledAt *time.Time
	CreatedAt   time.Time
}
