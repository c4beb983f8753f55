package teamfee

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de honorarios atado a ella.
type TxRunner interface {
	RunServiceFee(ctx context.Context, fn func(feeRepo repository.ServiceFeeRepository) error) error
}
