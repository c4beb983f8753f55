package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
)

// PDFUseCase genera el documento PDF de un pedido.
type PDFUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	settings  SettingsProvider
	generator OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	settings SettingsProvider,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{orders: orders, customers: customers, settings: settings, generator: generator}
}

// DownloadOrderPDF arma el documento con tienda, cliente, líneas y saldo total del cliente.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el pedido o su cliente no existen.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("%w: cliente %s", domain.ErrNotFound, order.CustomerID)
	}

	shop, err := uc.settings.Effective(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener configuración: %w", err)
	}

	list, err := uc.orders.ListByCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedidos del cliente: %w", err)
	}
	summary := Summarize(order)
	var others []float64
	for _, other := range list {
		if other.ID == order.ID || other.Status == entity.OrderStatusCancelled {
			continue
		}
		others = append(others, Summarize(other).Outstanding)
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, OrderDocument{
		Shop:             shop,
		Customer:         customer,
		Order:            order,
		Summary:          summary,
		GrandOutstanding: pricing.GrandOutstanding(summary.Outstanding, others...),
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%s.pdf", order.OrderNumber), nil
}
