package repository

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer y sus sub-registros.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve nil, nil si no existe. Incluye facturas fiscales, direcciones y contactos.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// ReplaceChildren reemplaza facturas fiscales, direcciones y contactos (usar dentro de una tx).
	ReplaceChildren(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
