// Package sales casos de uso de pedidos: alta con plan de pagos y trabajos, resumen financiero,
// saldo del cliente, avance de trabajos y documento PDF.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/fulfillment"
	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
	"github.com/jhoicas/decor-ops-api/pkg/logger"
	"github.com/jhoicas/decor-ops-api/pkg/money"
)

// OrderUseCase orquesta pedidos y su resumen financiero.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	tx        OrderTxRunner
	settings  SettingsProvider
	formatter *money.Formatter
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso. formatter y log pueden ser nil.
func NewOrderUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	tx OrderTxRunner,
	settings SettingsProvider,
	formatter *money.Formatter,
	log *logger.Logger,
) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if formatter == nil {
		formatter = money.NewFormatterFromLocale("th")
	}
	return &OrderUseCase{
		orders:    orders,
		customers: customers,
		tx:        tx,
		settings:  settings,
		formatter: formatter,
		log:       log.Component("sales"),
	}
}

// Create valida y persiste el pedido con líneas, trabajos y plan de pagos en una sola transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el pedido debe tener al menos una línea", domain.ErrInvalidInput)
	}
	mode, err := discountMode(in.Discount.Mode)
	if err != nil {
		return nil, err
	}
	shop, err := uc.settings.Effective(ctx)
	if err != nil {
		return nil, err
	}
	vatIncluded, vatRate := vatDefaults(shop, in.VATIncluded, in.VATRate)

	now := time.Now()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		OrderNumber:   newOrderNumber(orderDate),
		OrderDate:     orderDate,
		DiscountMode:  mode,
		DiscountValue: decimal.NewFromFloat(in.Discount.Value.Float64()),
		ShippingFee:   decimal.NewFromFloat(in.ShippingFee.Float64()),
		VATIncluded:   vatIncluded,
		VATRate:       decimal.NewFromFloat(vatRate),
		Note:          in.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for i, it := range in.Items {
		item, err := buildItem(order.ID, it, now)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
		order.Items = append(order.Items, item)
	}
	for i, p := range in.Payments {
		if p.Amount.Float64() < 0 {
			return nil, fmt.Errorf("%w: pago %d con monto negativo", domain.ErrInvalidInput, i+1)
		}
		order.Payments = append(order.Payments, buildPayment(order.ID, p, now))
	}
	order.Status = fulfillment.OrderStatus(order.Items)

	err = uc.tx.RunOrder(ctx, func(repo repository.OrderRepository) error {
		if err := repo.Create(ctx, order); err != nil {
			return err
		}
		for i := range order.Items {
			item := &order.Items[i]
			if err := repo.CreateItem(ctx, item); err != nil {
				return err
			}
			for j := range item.Jobs {
				if err := repo.CreateJob(ctx, &item.Jobs[j]); err != nil {
					return err
				}
			}
		}
		for i := range order.Payments {
			if err := repo.CreatePayment(ctx, &order.Payments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Str("customer_id", order.CustomerID).
		Msg("pedido creado")
	return uc.toResponse(order), nil
}

// Get devuelve el pedido con su resumen calculado.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(o), nil
}

// ListByCustomer lista los pedidos del cliente, más recientes primero.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*dto.OrderResponse, error) {
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, uc.toResponse(o))
	}
	return out, nil
}

// AddPayment agrega una entrada al plan de pagos. Pagar de más se permite; el saldo queda en 0.
func (uc *OrderUseCase) AddPayment(ctx context.Context, orderID string, in dto.PaymentRequest) (*dto.OrderResponse, error) {
	if in.Amount.Float64() <= 0 {
		return nil, fmt.Errorf("%w: amount debe ser mayor a 0", domain.ErrInvalidInput)
	}
	o, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	p := buildPayment(o.ID, in, time.Now())
	if err := uc.orders.CreatePayment(ctx, &p); err != nil {
		return nil, err
	}
	o.Payments = append(o.Payments, p)

	if s := Summarize(o); s.TotalPaid > s.Total {
		uc.log.Warn().
			Str("order_id", o.ID).
			Float64("total", s.Total).
			Float64("total_paid", s.TotalPaid).
			Msg("pagos superan el total del pedido")
	}
	return uc.toResponse(o), nil
}

// Outstanding saldo del pedido más el de los demás pedidos no cancelados del cliente.
func (uc *OrderUseCase) Outstanding(ctx context.Context, orderID string) (*dto.OutstandingResponse, error) {
	o, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	others, err := uc.otherOutstanding(ctx, o)
	if err != nil {
		return nil, err
	}
	current := Summarize(o).Outstanding
	var otherTotal float64
	for _, v := range others {
		otherTotal += v
	}
	return &dto.OutstandingResponse{
		OrderID:                o.ID,
		CustomerID:             o.CustomerID,
		Outstanding:            current,
		OtherOrdersOutstanding: otherTotal,
		GrandOutstanding:       pricing.GrandOutstanding(current, others...),
	}, nil
}

// Preview calcula el resumen sin persistir. VAT sin indicar toma el valor de la tienda.
func (uc *OrderUseCase) Preview(ctx context.Context, in dto.SummaryPreviewRequest) (*dto.SummaryResponse, error) {
	shop, err := uc.settings.Effective(ctx)
	if err != nil {
		return nil, err
	}
	vatIncluded, vatRate := vatDefaults(shop, in.VATIncluded, in.VATRate)

	items := make([]pricing.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, pricing.LineItem{Qty: it.Qty.Float64(), UnitPrice: it.UnitPrice.Float64()})
	}
	payments := make([]pricing.Payment, 0, len(in.Payments))
	for _, p := range in.Payments {
		payments = append(payments, pricing.Payment{Amount: p.Amount.Float64(), DueDate: p.DueDate, PaidDate: p.PaidDate, Method: p.Method})
	}
	others := make([]float64, 0, len(in.OtherOutstanding))
	for _, v := range in.OtherOutstanding {
		others = append(others, v.Float64())
	}

	s := pricing.ComputeSummary(
		items,
		pricing.Discount{Mode: strings.ToLower(strings.TrimSpace(in.Discount.Mode)), Value: in.Discount.Value.Float64()},
		in.ShippingFee.Float64(),
		vatIncluded,
		vatRate,
	).WithPayments(payments)

	out := uc.summaryResponse(s, pricing.GrandOutstanding(s.Outstanding, others...))
	return &out, nil
}

// UpdateJobStatus cambia el estado de un trabajo del pedido y recalcula el estado del pedido.
func (uc *OrderUseCase) UpdateJobStatus(ctx context.Context, orderID, jobID, status string) (*dto.OrderResponse, error) {
	if !fulfillment.IsValidJobStatus(status) {
		return nil, fmt.Errorf("%w: estado de trabajo %q desconocido", domain.ErrInvalidInput, status)
	}
	o, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	job := findJob(o, jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: trabajo %s", domain.ErrNotFound, jobID)
	}
	job.Status = fulfillment.NormalizeJobStatus(status)
	newStatus := fulfillment.OrderStatus(o.Items)

	err = uc.tx.RunOrder(ctx, func(repo repository.OrderRepository) error {
		if err := repo.UpdateJobStatus(ctx, jobID, job.Status); err != nil {
			return err
		}
		if newStatus == o.Status {
			return nil
		}
		return repo.UpdateStatus(ctx, o.ID, newStatus)
	})
	if err != nil {
		return nil, err
	}
	if newStatus != o.Status {
		uc.log.Info().Str("order_id", o.ID).Str("from", o.Status).Str("to", newStatus).Msg("estado de pedido actualizado")
		o.Status = newStatus
	}
	return uc.toResponse(o), nil
}

// Summarize resumen financiero del pedido persistido, con pagos aplicados.
func Summarize(o *entity.Order) pricing.Summary {
	items := make([]pricing.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, pricing.LineItem{Qty: pricing.FromDecimal(it.Qty), UnitPrice: pricing.FromDecimal(it.UnitPrice)})
	}
	payments := make([]pricing.Payment, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, pricing.Payment{Amount: pricing.FromDecimal(p.Amount), DueDate: p.DueDate, PaidDate: p.PaidDate, Method: p.Method})
	}
	return pricing.ComputeSummary(
		items,
		pricing.Discount{Mode: o.DiscountMode, Value: pricing.FromDecimal(o.DiscountValue)},
		pricing.FromDecimal(o.ShippingFee),
		o.VATIncluded,
		pricing.FromDecimal(o.VATRate),
	).WithPayments(payments)
}

func (uc *OrderUseCase) otherOutstanding(ctx context.Context, o *entity.Order) ([]float64, error) {
	list, err := uc.orders.ListByCustomer(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, other := range list {
		if other.ID == o.ID || other.Status == entity.OrderStatusCancelled {
			continue
		}
		out = append(out, Summarize(other).Outstanding)
	}
	return out, nil
}

func (uc *OrderUseCase) load(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (uc *OrderUseCase) summaryResponse(s pricing.Summary, grand float64) dto.SummaryResponse {
	f := uc.formatter
	return dto.SummaryResponse{
		Subtotal:         s.Subtotal,
		ShippingFee:      s.ShippingFee,
		DiscountAmt:      s.DiscountAmt,
		AfterDiscount:    s.AfterDiscount,
		PreVat:           s.PreVat,
		VatAmt:           s.VatAmt,
		Total:            s.Total,
		TotalPaid:        s.TotalPaid,
		Outstanding:      s.Outstanding,
		GrandOutstanding: grand,
		VATIncluded:      s.VATIncluded,
		VATRate:          s.VATRate,
		Formatted: map[string]string{
			"subtotal":          f.Format(s.Subtotal),
			"shipping_fee":      f.Format(s.ShippingFee),
			"discount_amt":      f.Format(s.DiscountAmt),
			"after_discount":    f.Format(s.AfterDiscount),
			"pre_vat":           f.Format(s.PreVat),
			"vat_amt":           f.Format(s.VatAmt),
			"total":             f.Format(s.Total),
			"total_paid":        f.Format(s.TotalPaid),
			"outstanding":       f.Format(s.Outstanding),
			"grand_outstanding": f.Format(grand),
		},
	}
}

func (uc *OrderUseCase) toResponse(o *entity.Order) *dto.OrderResponse {
	s := Summarize(o)
	out := &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderNumber: o.OrderNumber,
		OrderDate:   o.OrderDate,
		Status:      o.Status,
		Note:        o.Note,
		Items:       make([]dto.OrderItemResponse, 0, len(o.Items)),
		Payments:    make([]dto.PaymentResponse, 0, len(o.Payments)),
		Summary:     uc.summaryResponse(s, s.Outstanding),
	}
	for _, it := range o.Items {
		qty, price := pricing.FromDecimal(it.Qty), pricing.FromDecimal(it.UnitPrice)
		item := dto.OrderItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Description: it.Description,
			Qty:         qty,
			UnitPrice:   price,
			LineTotal:   qty * price,
			Status:      fulfillment.ItemStatus(it),
			Jobs:        make([]dto.JobResponse, 0, len(it.Jobs)),
		}
		for _, j := range it.Jobs {
			item.Jobs = append(item.Jobs, dto.JobResponse{
				ID:          j.ID,
				Type:        j.Type,
				Status:      fulfillment.NormalizeJobStatus(j.Status),
				TeamID:      j.TeamID,
				ScheduledAt: j.ScheduledAt,
			})
		}
		out.Items = append(out.Items, item)
	}
	for _, p := range o.Payments {
		out.Payments = append(out.Payments, dto.PaymentResponse{
			ID:       p.ID,
			Amount:   pricing.FromDecimal(p.Amount),
			Method:   p.Method,
			DueDate:  p.DueDate,
			PaidDate: p.PaidDate,
			Note:     p.Note,
		})
	}
	return out
}

func buildItem(orderID string, in dto.OrderItemRequest, now time.Time) (entity.OrderItem, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return entity.OrderItem{}, fmt.Errorf("%w: product_name es requerido", domain.ErrInvalidInput)
	}
	if in.Qty.Float64() <= 0 {
		return entity.OrderItem{}, fmt.Errorf("%w: qty debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if in.UnitPrice.Float64() < 0 {
		return entity.OrderItem{}, fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
	}
	item := entity.OrderItem{
		ID:          uuid.New().String(),
		OrderID:     orderID,
		ProductName: name,
		Description: in.Description,
		Qty:         decimal.NewFromFloat(in.Qty.Float64()),
		UnitPrice:   decimal.NewFromFloat(in.UnitPrice.Float64()),
	}
	for _, j := range in.Jobs {
		jobType := strings.ToLower(strings.TrimSpace(j.Type))
		if jobType != entity.JobTypeInstallation && jobType != entity.JobTypeDelivery {
			return entity.OrderItem{}, fmt.Errorf("%w: tipo de trabajo %q (installation | delivery)", domain.ErrInvalidInput, j.Type)
		}
		item.Jobs = append(item.Jobs, entity.Job{
			ID:          uuid.New().String(),
			OrderItemID: item.ID,
			Type:        jobType,
			Status:      entity.JobStatusPending,
			TeamID:      j.TeamID,
			ScheduledAt: j.ScheduledAt,
			CreatedAt:   now,
		})
	}
	return item, nil
}

func buildPayment(orderID string, in dto.PaymentRequest, now time.Time) entity.OrderPayment {
	return entity.OrderPayment{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Amount:    decimal.NewFromFloat(in.Amount.Float64()),
		Method:    in.Method,
		DueDate:   in.DueDate,
		PaidDate:  in.PaidDate,
		Note:      in.Note,
		CreatedAt: now,
	}
}

func findJob(o *entity.Order, jobID string) *entity.Job {
	for i := range o.Items {
		for j := range o.Items[i].Jobs {
			if o.Items[i].Jobs[j].ID == jobID {
				return &o.Items[i].Jobs[j]
			}
		}
	}
	return nil
}

// discountMode vacío equivale a monto fijo.
func discountMode(mode string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(mode)); m {
	case "", pricing.ModeFixed, pricing.ModeAmount:
		return entity.DiscountModeFixed, nil
	case pricing.ModePercent:
		return entity.DiscountModePercent, nil
	default:
		return "", fmt.Errorf("%w: discount.mode debe ser percent o fixed", domain.ErrInvalidInput)
	}
}

func vatDefaults(shop *entity.ShopSettings, included *bool, rate *pricing.Amount) (bool, float64) {
	vatIncluded := shop.VATIncluded
	if included != nil {
		vatIncluded = *included
	}
	vatRate := pricing.FromDecimal(shop.VATRate)
	if rate != nil {
		vatRate = rate.Float64()
	}
	return vatIncluded, vatRate
}

func newOrderNumber(date time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", date.Format("20060102"), suffix)
}
