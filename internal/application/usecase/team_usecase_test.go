package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/application/usecase"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

type memTeamRepo struct{ items []*entity.Team }

func (m *memTeamRepo) Create(_ context.Context, t *entity.Team) error {
	m.items = append(m.items, t)
	return nil
}

func (m *memTeamRepo) GetByID(_ context.Context, id string) (*entity.Team, error) {
	for _, t := range m.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTeamRepo) GetByName(_ context.Context, name string) (*entity.Team, error) {
	for _, t := range m.items {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTeamRepo) List(_ context.Context, onlyActive bool) ([]*entity.Team, error) {
	var out []*entity.Team
	for _, t := range m.items {
		if onlyActive && t.Status != usecase.TeamStatusActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memTeamRepo) Update(context.Context, *entity.Team) error { return nil }

func TestTeamUseCase_Create(t *testing.T) {
	uc := usecase.NewTeamUseCase(&memTeamRepo{})
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateTeamRequest{Name: "  ทีมช่างเอ ", TeamType: "installation"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ทีมช่างเอ", out.Name)
	assert.Equal(t, usecase.TeamStatusActive, out.Status)

	_, err = uc.Create(ctx, dto.CreateTeamRequest{Name: "ทีมช่างเอ"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateTeamRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateTeamRequest{Name: "ทีมบี", Status: "archivado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTeamUseCase_UpdateYList(t *testing.T) {
	repo := &memTeamRepo{}
	uc := usecase.NewTeamUseCase(repo)
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateTeamRequest{Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateTeamRequest{Name: "B"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, a.ID, dto.UpdateTeamRequest{Name: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Update(ctx, a.ID, dto.UpdateTeamRequest{Status: "INACTIVE", Phone: "0812345678"})
	require.NoError(t, err)
	assert.Equal(t, usecase.TeamStatusInactive, out.Status)
	assert.Equal(t, "0812345678", out.Phone)
	assert.Equal(t, "A", out.Name)

	active, err := uc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "B", active[0].Name)

	_, err = uc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
