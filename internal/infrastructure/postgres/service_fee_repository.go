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

var _ repository.ServiceFeeRepository = (*ServiceFeeRepo)(nil)

const serviceFeeColumns = `id, team_id, labor_cost, material_cost, travel_cost, deduct_percent, note, status, created_at, updated_at`

// ServiceFeeRepo implementación de ServiceFeeRepository (usable con pool o tx).
type ServiceFeeRepo struct {
	q Querier
}

// NewServiceFeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceFeeRepository(q Querier) *ServiceFeeRepo {
	return &ServiceFeeRepo{q: q}
}

// CreateBatch persiste el lote. deduct_percent NULL significa porcentaje por defecto.
func (r *ServiceFeeRepo) CreateBatch(ctx context.Context, b *entity.ServiceFeeBatch) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	query := `
		INSERT INTO team_service_fees (` + serviceFeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.TeamID, b.LaborCost, b.MaterialCost, b.TravelCost, b.DeductPercent, b.Note, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service fee: %w", err)
	}
	return nil
}

// GetBatch obtiene el lote con ajustes, pagos y trabajos vinculados.
func (r *ServiceFeeRepo) GetBatch(ctx context.Context, id string) (*entity.ServiceFeeBatch, error) {
	b, err := scanServiceFee(r.q.QueryRow(ctx, `SELECT `+serviceFeeColumns+` FROM team_service_fees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service fee: %w", err)
	}
	if err := r.loadChildren(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListByTeam lista los lotes del equipo, más recientes primero.
func (r *ServiceFeeRepo) ListByTeam(ctx context.Context, teamID string) ([]*entity.ServiceFeeBatch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+serviceFeeColumns+` FROM team_service_fees
		WHERE team_id = $1 ORDER BY created_at DESC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("list service fees: %w", err)
	}
	var list []*entity.ServiceFeeBatch
	for rows.Next() {
		b, err := scanServiceFee(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan service fee: %w", err)
		}
		list = append(list, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list service fees: %w", err)
	}
	for _, b := range list {
		if err := r.loadChildren(ctx, b); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *ServiceFeeRepo) AddAdjustment(ctx context.Context, a *entity.ServiceFeeAdjustment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO team_service_fee_adjustments (id, service_fee_id, amount, note, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.ServiceFeeID, a.Amount, a.Note, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service fee adjustment: %w", err)
	}
	return nil
}

func (r *ServiceFeeRepo) DeleteAdjustment(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM team_service_fee_adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service fee adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ServiceFeeRepo) AddPayment(ctx context.Context, p *entity.ServiceFeePayment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO team_service_fee_payments (id, service_fee_id, amount, payment_method, slip_url, note, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.ServiceFeeID, p.Amount, p.PaymentMethod, nullIfEmpty(p.SlipURL), p.Note, p.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert service fee payment: %w", err)
	}
	return nil
}

// LinkJobs usa ON CONFLICT sobre job_id: un trabajo vinculado a otro lote se mueve a este.
func (r *ServiceFeeRepo) LinkJobs(ctx context.Context, batchID string, jobIDs []string) error {
	for _, jobID := range jobIDs {
		_, err := r.q.Exec(ctx, `
			INSERT INTO team_service_fee_jobs (job_id, service_fee_id) VALUES ($1, $2)
			ON CONFLICT (job_id) DO UPDATE SET service_fee_id = EXCLUDED.service_fee_id`,
			jobID, batchID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: trabajo %s inexistente", domain.ErrInvalidInput, jobID)
			}
			return fmt.Errorf("link job: %w", err)
		}
	}
	return nil
}

func (r *ServiceFeeRepo) UnlinkJob(ctx context.Context, jobID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM team_service_fee_jobs WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("unlink job: %w", err)
	}
	return nil
}

// DeleteBatch borra hijos y lote explícitamente; no depende de ON DELETE CASCADE.
func (r *ServiceFeeRepo) DeleteBatch(ctx context.Context, id string) error {
	for _, table := range []string{"team_service_fee_jobs", "team_service_fee_adjustments", "team_service_fee_payments"} {
		if _, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE service_fee_id = $1`, id); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM team_service_fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanServiceFee(row pgx.Row) (*entity.ServiceFeeBatch, error) {
	var b entity.ServiceFeeBatch
	err := row.Scan(
		&b.ID, &b.TeamID, &b.LaborCost, &b.MaterialCost, &b.TravelCost, &b.DeductPercent, &b.Note, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ServiceFeeRepo) loadChildren(ctx context.Context, b *entity.ServiceFeeBatch) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, service_fee_id, amount, note, created_at
		FROM team_service_fee_adjustments WHERE service_fee_id = $1 ORDER BY created_at`, b.ID)
	if err != nil {
		return fmt.Errorf("list adjustments: %w", err)
	}
	for rows.Next() {
		var a entity.ServiceFeeAdjustment
		if err := rows.Scan(&a.ID, &a.ServiceFeeID, &a.Amount, &a.Note, &a.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan adjustment: %w", err)
		}
		b.Adjustments = append(b.Adjustments, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list adjustments: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, service_fee_id, amount, payment_method, COALESCE(slip_url, ''), note, paid_at
		FROM team_service_fee_payments WHERE service_fee_id = $1 ORDER BY paid_at`, b.ID)
	if err != nil {
		return fmt.Errorf("list service fee payments: %w", err)
	}
	for rows.Next() {
		var p entity.ServiceFeePayment
		if err := rows.Scan(&p.ID, &p.ServiceFeeID, &p.Amount, &p.PaymentMethod, &p.SlipURL, &p.Note, &p.PaidAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan service fee payment: %w", err)
		}
		b.Payments = append(b.Payments, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list service fee payments: %w", err)
	}

	rows, err = r.q.Query(ctx, `SELECT job_id FROM team_service_fee_jobs WHERE service_fee_id = $1 ORDER BY job_id`, b.ID)
	if err != nil {
		return fmt.Errorf("list linked jobs: %w", err)
	}
	defer rows.Close()
	b.JobIDs = []string{}
	for rows.Next() {
		var jobID string
		if err := rows.Scan(&jobID); err != nil {
			return fmt.Errorf("scan linked job: %w", err)
		}
		b.JobIDs = append(b.JobIDs, jobID)
	}
	return rows.Err()
}
