package customer

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de clientes atado a ella.
// Cabecera y sub-registros se guardan juntos o no se guardan.
type TxRunner interface {
	RunCustomer(ctx context.Context, fn func(customerRepo repository.CustomerRepository) error) error
}
