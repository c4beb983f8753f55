package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación de TeamRepository.
type TeamRepo struct {
	q Querier
}

// NewTeamRepository construye el adaptador.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

func (r *TeamRepo) Create(ctx context.Context, t *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, team_type, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, t.ID, t.Name, t.TeamType, t.Phone, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *TeamRepo) GetByName(ctx context.Context, name string) (*entity.Team, error) {
	return r.getOne(ctx, `WHERE lower(name) = lower($1)`, name)
}

func (r *TeamRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Team, error) {
	query := `
		SELECT id, name, team_type, phone, status, created_at, updated_at
		FROM teams WHERE NOT $1 OR status = 'active' ORDER BY name`
	rows, err := r.q.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()
	var list []*entity.Team
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.TeamType, &t.Phone, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TeamRepo) Update(ctx context.Context, t *entity.Team) error {
	query := `
		UPDATE teams SET name = $2, team_type = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, t.ID, t.Name, t.TeamType, t.Phone, t.Status, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TeamRepo) getOne(ctx context.Context, where string, arg any) (*entity.Team, error) {
	query := `SELECT id, name, team_type, phone, status, created_at, updated_at FROM teams ` + where
	var t entity.Team
	err := r.q.QueryRow(ctx, query, arg).Scan(&t.ID, &t.Name, &t.TeamType, &t.Phone, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}
