package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/decor-ops-api/internal/application/customer"
	"github.com/jhoicas/decor-ops-api/internal/application/sales"
	"github.com/jhoicas/decor-ops-api/internal/application/teamfee"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

var (
	_ customer.TxRunner   = (*TxRunner)(nil)
	_ sales.OrderTxRunner = (*TxRunner)(nil)
	_ teamfee.TxRunner    = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCustomer cabecera y sub-registros del cliente en una sola transacción.
func (r *TxRunner) RunCustomer(ctx context.Context, fn func(customerRepo repository.CustomerRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCustomerRepository(tx))
	})
}

// RunOrder pedido, líneas, trabajos y pagos en una sola transacción.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewOrderRepository(tx))
	})
}

// RunServiceFee lote de honorarios con sus vínculos en una sola transacción.
func (r *TxRunner) RunServiceFee(ctx context.Context, fn func(feeRepo repository.ServiceFeeRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewServiceFeeRepository(tx))
	})
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
