package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/application/usecase"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

type memSettingsRepo struct{ row *entity.ShopSettings }

func (m *memSettingsRepo) Get(context.Context) (*entity.ShopSettings, error) { return m.row, nil }

func (m *memSettingsRepo) Upsert(_ context.Context, s *entity.ShopSettings) error {
	m.row = s
	return nil
}

func TestSettingsUseCase_SinFilaUsaDefaults(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&memSettingsRepo{}, usecase.ShopDefaults{
		ShopName:    "ร้านผ้าม่าน",
		VATRate:     decimal.RequireFromString("0.07"),
		VATIncluded: true,
	})

	s, err := uc.Effective(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ร้านผ้าม่าน", s.ShopName)
	assert.True(t, s.VATIncluded)
	assert.Equal(t, "0.07", s.VATRate.String())
}

func TestSettingsUseCase_Update(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo, usecase.ShopDefaults{ShopName: "x"})
	ctx := context.Background()

	_, err := uc.Update(ctx, dto.ShopSettingsDTO{ShopName: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, dto.ShopSettingsDTO{ShopName: "ร้าน", VATRate: decimal.NewFromInt(7)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Update(ctx, dto.ShopSettingsDTO{
		ShopName: " ร้านม่านสวย ",
		TaxID:    "0105551234567",
		Address:  dto.AddressDTO{Province: "กรุงเทพมหานคร", Zipcode: "10110"},
		VATRate:  decimal.RequireFromString("0.07"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ร้านม่านสวย", out.ShopName)
	require.NotNil(t, repo.row)
	assert.Equal(t, "10110", repo.row.Address.Zipcode)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0105551234567", got.TaxID)
}
