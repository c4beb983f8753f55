package repository

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

// SettingsRepository persistencia de la configuración de la tienda (fila única).
type SettingsRepository interface {
	// Get devuelve nil, nil si todavía no se guardó configuración.
	Get(ctx context.Context) (*entity.ShopSettings, error)
	Upsert(ctx context.Context, s *entity.ShopSettings) error
}
