package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, customer_id, order_number, order_date, discount_mode, discount_value, shipping_fee,
	vat_included, vat_rate, status, note, created_at, updated_at`

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CustomerID, o.OrderNumber, o.OrderDate, o.DiscountMode, o.DiscountValue, o.ShippingFee,
		o.VATIncluded, o.VATRate, o.Status, o.Note, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del pedido.
func (r *OrderRepo) CreateItem(ctx context.Context, it *entity.OrderItem) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_items (id, order_id, product_name, description, qty, unit_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.OrderID, it.ProductName, it.Description, it.Qty, it.UnitPrice, nullIfEmpty(it.Status),
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// CreatePayment persiste una entrada del plan de pagos.
func (r *OrderRepo) CreatePayment(ctx context.Context, p *entity.OrderPayment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_payments (id, order_id, amount, method, due_date, paid_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OrderID, p.Amount, p.Method, p.DueDate, p.PaidDate, p.Note, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order payment: %w", err)
	}
	return nil
}

// CreateJob persiste un trabajo de instalación o entrega.
func (r *OrderRepo) CreateJob(ctx context.Context, j *entity.Job) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_jobs (id, order_item_id, job_type, status, team_id, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		j.ID, j.OrderItemID, j.Type, j.Status, nullIfEmpty(j.TeamID), j.ScheduledAt, j.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: equipo %s inexistente", domain.ErrInvalidInput, j.TeamID)
		}
		return fmt.Errorf("insert order job: %w", err)
	}
	return nil
}

// GetByID obtiene el pedido con líneas, trabajos y pagos.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadChildren(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListByCustomer lista los pedidos del cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE customer_id = $1 ORDER BY order_date DESC, created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	// Las líneas se cargan con el cursor ya cerrado: dentro de una tx no se admiten dos consultas abiertas.
	for _, o := range list {
		if err := r.loadChildren(ctx, o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// UpdateStatus actualiza el estado derivado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateJobStatus actualiza el estado de un trabajo.
func (r *OrderRepo) UpdateJobStatus(ctx context.Context, jobID, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE order_jobs SET status = $2 WHERE id = $1`, jobID, status)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.OrderNumber, &o.OrderDate, &o.DiscountMode, &o.DiscountValue, &o.ShippingFee,
		&o.VATIncluded, &o.VATRate, &o.Status, &o.Note, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) loadChildren(ctx context.Context, o *entity.Order) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_name, description, qty, unit_price, COALESCE(status, '')
		FROM order_items WHERE order_id = $1 ORDER BY created_at, id`, o.ID)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	o.Items = []entity.OrderItem{}
	index := map[string]int{}
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Description, &it.Qty, &it.UnitPrice, &it.Status); err != nil {
			rows.Close()
			return fmt.Errorf("scan order item: %w", err)
		}
		index[it.ID] = len(o.Items)
		o.Items = append(o.Items, it)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list order items: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT j.id, j.order_item_id, j.job_type, j.status, COALESCE(j.team_id::text, ''), j.scheduled_at, j.created_at
		FROM order_jobs j JOIN order_items i ON i.id = j.order_item_id
		WHERE i.order_id = $1 ORDER BY j.created_at, j.id`, o.ID)
	if err != nil {
		return fmt.Errorf("list order jobs: %w", err)
	}
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.OrderItemID, &j.Type, &j.Status, &j.TeamID, &j.ScheduledAt, &j.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan order job: %w", err)
		}
		if i, ok := index[j.OrderItemID]; ok {
			o.Items[i].Jobs = append(o.Items[i].Jobs, j)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list order jobs: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, order_id, amount, method, due_date, paid_date, note, created_at
		FROM order_payments WHERE order_id = $1 ORDER BY COALESCE(paid_date, due_date, created_at), created_at`, o.ID)
	if err != nil {
		return fmt.Errorf("list order payments: %w", err)
	}
	defer rows.Close()
	o.Payments = []entity.OrderPayment{}
	for rows.Next() {
		var p entity.OrderPayment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.DueDate, &p.PaidDate, &p.Note, &p.CreatedAt); err != nil {
			return fmt.Errorf("scan order payment: %w", err)
		}
		o.Payments = append(o.Payments, p)
	}
	return rows.Err()
}
