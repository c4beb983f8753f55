package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

// Estados de equipo.
const (
	TeamStatusActive   = "active"
	TeamStatusInactive = "inactive"
)

// TeamUseCase casos de uso CRUD para equipos de instalación y entrega.
type TeamUseCase struct {
	repo repository.TeamRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(repo repository.TeamRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// Create crea un equipo. El nombre es único.
func (uc *TeamUseCase) Create(ctx context.Context, in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	status, err := teamStatus(in.Status)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	team := &entity.Team{
		ID:        uuid.New().String(),
		Name:      name,
		TeamType:  in.TeamType,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// GetByID obtiene un equipo.
func (uc *TeamUseCase) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound
	}
	return toTeamResponse(team), nil
}

// List lista equipos; onlyActive filtra los inactivos.
func (uc *TeamUseCase) List(ctx context.Context, onlyActive bool) ([]*dto.TeamResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TeamResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTeamResponse(t))
	}
	return out, nil
}

// Update actualiza un equipo.
func (uc *TeamUseCase) Update(ctx context.Context, id string, in dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" && name != team.Name {
		other, err := uc.repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != team.ID {
			return nil, domain.ErrDuplicate
		}
		team.Name = name
	}
	if in.Status != "" {
		status, err := teamStatus(in.Status)
		if err != nil {
			return nil, err
		}
		team.Status = status
	}
	if in.TeamType != "" {
		team.TeamType = in.TeamType
	}
	if in.Phone != "" {
		team.Phone = in.Phone
	}
	team.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

func teamStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", TeamStatusActive:
		return TeamStatusActive, nil
	case TeamStatusInactive:
		return TeamStatusInactive, nil
	default:
		return "", fmt.Errorf("%w: status debe ser active o inactive", domain.ErrInvalidInput)
	}
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		TeamType:  t.TeamType,
		Phone:     t.Phone,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
