package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración de la tienda en una fila fija (id = 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get(ctx context.Context) (*entity.ShopSettings, error) {
	var s entity.ShopSettings
	dest := append([]any{&s.ShopName, &s.TaxID, &s.Branch, &s.Phone, &s.Email, &s.PromptPayID, &s.VATRate, &s.VATIncluded, &s.UpdatedAt},
		addressDest(&s.Address)...)
	err := r.q.QueryRow(ctx, `
		SELECT shop_name, tax_id, branch, phone, email, promptpay_id, vat_rate, vat_included, updated_at, `+addressColumns+`
		FROM shop_settings WHERE id = 1`).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.ShopSettings) error {
	args := append([]any{s.ShopName, s.TaxID, s.Branch, s.Phone, s.Email, s.PromptPayID, s.VATRate, s.VATIncluded, s.UpdatedAt},
		addressArgs(s.Address)...)
	_, err := r.q.Exec(ctx, `
		INSERT INTO shop_settings (id, shop_name, tax_id, branch, phone, email, promptpay_id, vat_rate, vat_included, updated_at, `+addressColumns+`)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			shop_name = EXCLUDED.shop_name, tax_id = EXCLUDED.tax_id, branch = EXCLUDED.branch,
			phone = EXCLUDED.phone, email = EXCLUDED.email, promptpay_id = EXCLUDED.promptpay_id,
			vat_rate = EXCLUDED.vat_rate, vat_included = EXCLUDED.vat_included, updated_at = EXCLUDED.updated_at,
			addr_number = EXCLUDED.addr_number, addr_moo = EXCLUDED.addr_moo, addr_village = EXCLUDED.addr_village,
			addr_soi = EXCLUDED.addr_soi, addr_road = EXCLUDED.addr_road, addr_tambon = EXCLUDED.addr_tambon,
			addr_amphoe = EXCLUDED.addr_amphoe, addr_province = EXCLUDED.addr_province, addr_zipcode = EXCLUDED.addr_zipcode`,
		args...)
	if err != nil {
		return fmt.Errorf("upsert shop settings: %w", err)
	}
	return nil
}
