package repository

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos, líneas, pagos y trabajos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	CreatePayment(ctx context.Context, payment *entity.OrderPayment) error
	CreateJob(ctx context.Context, job *entity.Job) error
	// GetByID devuelve nil, nil si no existe. Incluye líneas (con trabajos) y pagos.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListByCustomer devuelve los pedidos del cliente con líneas y pagos, más recientes primero.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateJobStatus(ctx context.Context, jobID, status string) error
}
