package repository

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

// ServiceFeeRepository define el puerto de persistencia para lotes de honorarios de equipos.
type ServiceFeeRepository interface {
	CreateBatch(ctx context.Context, batch *entity.ServiceFeeBatch) error
	// GetBatch devuelve nil, nil si no existe. Incluye ajustes, pagos y trabajos vinculados.
	GetBatch(ctx context.Context, id string) (*entity.ServiceFeeBatch, error)
	ListByTeam(ctx context.Context, teamID string) ([]*entity.ServiceFeeBatch, error)
	AddAdjustment(ctx context.Context, adj *entity.ServiceFeeAdjustment) error
	DeleteAdjustment(ctx context.Context, id string) error
	AddPayment(ctx context.Context, payment *entity.ServiceFeePayment) error
	// LinkJobs desvincula los trabajos de cualquier otro lote y los vincula a batchID.
	LinkJobs(ctx context.Context, batchID string, jobIDs []string) error
	UnlinkJob(ctx context.Context, jobID string) error
	// DeleteBatch elimina ajustes, pagos, vínculos y el lote (usar dentro de una tx).
	DeleteBatch(ctx context.Context, id string) error
}
