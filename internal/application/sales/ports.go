package sales

import (
	"context"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción con el repositorio de pedidos atado a ella.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// SettingsProvider entrega la configuración vigente de la tienda (guardada o por defecto).
type SettingsProvider interface {
	Effective(ctx context.Context) (*entity.ShopSettings, error)
}

// OrderDocument datos ya calculados que necesita el generador de PDF.
type OrderDocument struct {
	Shop             *entity.ShopSettings
	Customer         *entity.Customer
	Order            *entity.Order
	Summary          pricing.Summary
	GrandOutstanding float64
}

// OrderPDFGenerator genera el documento del pedido (cotización / nota de venta).
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, doc OrderDocument) ([]byte, error)
}
