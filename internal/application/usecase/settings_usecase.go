package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

// ShopDefaults valores usados mientras no exista fila en shop_settings.
type ShopDefaults struct {
	ShopName    string
	VATRate     decimal.Decimal
	VATIncluded bool
}

// SettingsUseCase lectura y guardado de la configuración de la tienda.
type SettingsUseCase struct {
	repo     repository.SettingsRepository
	defaults ShopDefaults
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, defaults ShopDefaults) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, defaults: defaults}
}

// Effective devuelve la configuración guardada o, si no hay, los valores por defecto.
func (uc *SettingsUseCase) Effective(ctx context.Context) (*entity.ShopSettings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &entity.ShopSettings{
			ShopName:    uc.defaults.ShopName,
			VATRate:     uc.defaults.VATRate,
			VATIncluded: uc.defaults.VATIncluded,
		}, nil
	}
	return s, nil
}

// Get GET /api/settings
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.ShopSettingsDTO, error) {
	s, err := uc.Effective(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(s), nil
}

// Update guarda la configuración. La tasa de IVA es una fracción en [0, 1).
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.ShopSettingsDTO) (*dto.ShopSettingsDTO, error) {
	if strings.TrimSpace(in.ShopName) == "" {
		return nil, fmt.Errorf("%w: shop_name es requerido", domain.ErrInvalidInput)
	}
	if in.VATRate.IsNegative() || in.VATRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: vat_rate debe estar entre 0 y 1 (0.07 = 7%%)", domain.ErrInvalidInput)
	}
	s := &entity.ShopSettings{
		ShopName:    strings.TrimSpace(in.ShopName),
		TaxID:       in.TaxID,
		Branch:      in.Branch,
		Address:     in.Address.ToEntity(),
		Phone:       in.Phone,
		Email:       in.Email,
		PromptPayID: in.PromptPayID,
		VATRate:     in.VATRate,
		VATIncluded: in.VATIncluded,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsDTO(s), nil
}

func toSettingsDTO(s *entity.ShopSettings) *dto.ShopSettingsDTO {
	return &dto.ShopSettingsDTO{
		ShopName:    s.ShopName,
		TaxID:       s.TaxID,
		Branch:      s.Branch,
		Address:     dto.AddressFromEntity(s.Address),
		Phone:       s.Phone,
		Email:       s.Email,
		PromptPayID: s.PromptPayID,
		VATRate:     s.VATRate,
		VATIncluded: s.VATIncluded,
	}
}
