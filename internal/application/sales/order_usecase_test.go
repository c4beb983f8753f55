package sales_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/application/sales"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
	"github.com/jhoicas/decor-ops-api/internal/domain/repository"
	"github.com/jhoicas/decor-ops-api/pkg/money"
)

const tol = 1e-9

// memOrders guarda pedidos completos; GetByID devuelve copias para que el caso de uso no comparta memoria.
type memOrders struct{ items map[string]*entity.Order }

func newMemOrders() *memOrders { return &memOrders{items: map[string]*entity.Order{}} }

func clone(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = make([]entity.OrderItem, len(o.Items))
	for i, it := range o.Items {
		it.Jobs = append([]entity.Job(nil), it.Jobs...)
		cp.Items[i] = it
	}
	cp.Payments = append([]entity.OrderPayment(nil), o.Payments...)
	return &cp
}

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	cp.Items, cp.Payments = nil, nil
	m.items[o.ID] = &cp
	return nil
}

func (m *memOrders) CreateItem(_ context.Context, it *entity.OrderItem) error {
	o := m.items[it.OrderID]
	cp := *it
	cp.Jobs = nil
	o.Items = append(o.Items, cp)
	return nil
}

func (m *memOrders) CreatePayment(_ context.Context, p *entity.OrderPayment) error {
	o := m.items[p.OrderID]
	o.Payments = append(o.Payments, *p)
	return nil
}

func (m *memOrders) CreateJob(_ context.Context, j *entity.Job) error {
	for _, o := range m.items {
		for i := range o.Items {
			if o.Items[i].ID == j.OrderItemID {
				o.Items[i].Jobs = append(o.Items[i].Jobs, *j)
			}
		}
	}
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return clone(o), nil
}

func (m *memOrders) ListByCustomer(_ context.Context, customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.items {
		if o.CustomerID == customerID {
			out = append(out, clone(o))
		}
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	m.items[id].Status = status
	return nil
}

func (m *memOrders) UpdateJobStatus(_ context.Context, jobID, status string) error {
	for _, o := range m.items {
		for i := range o.Items {
			for j := range o.Items[i].Jobs {
				if o.Items[i].Jobs[j].ID == jobID {
					o.Items[i].Jobs[j].Status = status
				}
			}
		}
	}
	return nil
}

type memCustomers struct{ items map[string]*entity.Customer }

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error { m.items[c.ID] = c; return nil }
func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return m.items[id], nil
}
func (m *memCustomers) List(context.Context, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (m *memCustomers) Update(context.Context, *entity.Customer) error          { return nil }
func (m *memCustomers) ReplaceChildren(context.Context, *entity.Customer) error { return nil }
func (m *memCustomers) Delete(context.Context, string) error                    { return nil }

type memTx struct{ orders *memOrders }

func (t memTx) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(t.orders)
}

type fixedSettings struct{ s entity.ShopSettings }

func (f fixedSettings) Effective(context.Context) (*entity.ShopSettings, error) {
	s := f.s
	return &s, nil
}

func setup() (*sales.OrderUseCase, *memOrders) {
	orders := newMemOrders()
	customers := &memCustomers{items: map[string]*entity.Customer{"c1": {ID: "c1", Name: "คุณสมชาย"}}}
	settings := fixedSettings{s: entity.ShopSettings{
		ShopName:    "ร้านม่านสวย",
		VATRate:     decimal.RequireFromString("0.07"),
		VATIncluded: true,
	}}
	uc := sales.NewOrderUseCase(orders, customers, memTx{orders: orders}, settings, money.NewFormatterFromLocale("en"), nil)
	return uc, orders
}

func ptrAmount(v float64) *pricing.Amount {
	a := pricing.Amount(v)
	return &a
}

func basicOrder() dto.CreateOrderRequest {
	paid := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return dto.CreateOrderRequest{
		CustomerID: "c1",
		Items: []dto.OrderItemRequest{
			{ProductName: "ม่านจีบ", Qty: 2, UnitPrice: 1000, Jobs: []dto.JobRequest{{Type: "installation"}}},
			{ProductName: "ราง", Qty: 1, UnitPrice: 500},
		},
		Discount:    dto.DiscountRequest{Mode: "percent", Value: 10},
		ShippingFee: 100,
		Payments:    []dto.PaymentRequest{{Amount: 1000, PaidDate: &paid, Method: "transfer"}},
	}
}

func TestCreate_CalculaResumenConIVAIncluidoPorDefecto(t *testing.T) {
	uc, orders := setup()

	out, err := uc.Create(context.Background(), basicOrder())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.OrderNumber, "ORD-"), out.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.InDelta(t, 2500, out.Summary.Subtotal, tol)
	assert.InDelta(t, 260, out.Summary.DiscountAmt, tol)
	assert.InDelta(t, 2340, out.Summary.Total, tol)
	assert.InDelta(t, 2340/1.07, out.Summary.PreVat, tol)
	assert.InDelta(t, 1340, out.Summary.Outstanding, tol)
	assert.True(t, out.Summary.VATIncluded)
	assert.Equal(t, "2,340.00", out.Summary.Formatted["total"])

	require.Len(t, out.Items, 2)
	assert.InDelta(t, 2000, out.Items[0].LineTotal, tol)
	require.Len(t, out.Items[0].Jobs, 1)
	assert.Equal(t, entity.JobStatusPending, out.Items[0].Jobs[0].Status)

	stored := orders.items[out.ID]
	require.NotNil(t, stored)
	require.Len(t, stored.Items, 2)
	assert.Len(t, stored.Items[0].Jobs, 1)
	assert.Len(t, stored.Payments, 1)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, orders := setup()
	ctx := context.Background()

	req := basicOrder()
	req.CustomerID = "nope"
	_, err := uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	req = basicOrder()
	req.Items = nil
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = basicOrder()
	req.Discount.Mode = "bogo"
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = basicOrder()
	req.Items[0].Jobs[0].Type = "repair"
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = basicOrder()
	req.Items[1].Qty = 0
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, orders.items)
}

func TestPreview_UsaDefaultsYPermiteSobrescribir(t *testing.T) {
	uc, _ := setup()
	ctx := context.Background()

	out, err := uc.Preview(ctx, dto.SummaryPreviewRequest{
		Items: []dto.OrderItemRequest{{Qty: 1, UnitPrice: 1070}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1070, out.Total, tol)
	assert.InDelta(t, 70, out.VatAmt, 1e-6)

	excluded := false
	out, err = uc.Preview(ctx, dto.SummaryPreviewRequest{
		Items:            []dto.OrderItemRequest{{Qty: 1, UnitPrice: 1000}},
		VATIncluded:      &excluded,
		VATRate:          ptrAmount(0.07),
		Payments:         []dto.PaymentRequest{{Amount: 70}},
		OtherOutstanding: []pricing.Amount{500},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1070, out.Total, 1e-6)
	assert.InDelta(t, 1000, out.Outstanding, 1e-6)
	assert.InDelta(t, 1500, out.GrandOutstanding, 1e-6)
	assert.Equal(t, "1,500.00", out.Formatted["grand_outstanding"])
}

func TestAddPayment(t *testing.T) {
	uc, orders := setup()
	ctx := context.Background()
	created, err := uc.Create(ctx, basicOrder())
	require.NoError(t, err)

	_, err = uc.AddPayment(ctx, created.ID, dto.PaymentRequest{Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddPayment(ctx, "nope", dto.PaymentRequest{Amount: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.AddPayment(ctx, created.ID, dto.PaymentRequest{Amount: 5000})
	require.NoError(t, err)
	assert.InDelta(t, 6000, out.Summary.TotalPaid, tol)
	assert.Zero(t, out.Summary.Outstanding)
	assert.Len(t, orders.items[created.ID].Payments, 2)
}

func TestOutstanding_SumaOtrosPedidosNoCancelados(t *testing.T) {
	uc, orders := setup()
	ctx := context.Background()

	first, err := uc.Create(ctx, basicOrder())
	require.NoError(t, err)

	second := basicOrder()
	second.Payments = nil
	second.Discount = dto.DiscountRequest{}
	second.ShippingFee = 0
	b, err := uc.Create(ctx, second)
	require.NoError(t, err)

	cancelled, err := uc.Create(ctx, second)
	require.NoError(t, err)
	orders.items[cancelled.ID].Status = entity.OrderStatusCancelled

	out, err := uc.Outstanding(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CustomerID)
	assert.InDelta(t, 1340, out.Outstanding, tol)
	assert.InDelta(t, 2500, out.OtherOrdersOutstanding, tol)
	assert.InDelta(t, 3840, out.GrandOutstanding, tol)

	out, err = uc.Outstanding(ctx, b.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3840, out.GrandOutstanding, tol)
}

func TestUpdateJobStatus_RecalculaEstadoDelPedido(t *testing.T) {
	uc, orders := setup()
	ctx := context.Background()

	req := basicOrder()
	req.Items = req.Items[:1]
	created, err := uc.Create(ctx, req)
	require.NoError(t, err)
	jobID := created.Items[0].Jobs[0].ID

	_, err = uc.UpdateJobStatus(ctx, created.ID, jobID, "terminado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateJobStatus(ctx, created.ID, "otro", "completed")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.UpdateJobStatus(ctx, created.ID, jobID, "กำลังดำเนินการ")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, out.Status)
	assert.Equal(t, entity.JobStatusProcessing, out.Items[0].Status)

	out, err = uc.UpdateJobStatus(ctx, created.ID, jobID, "เสร็จสิ้น")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	assert.Equal(t, entity.OrderStatusCompleted, orders.items[created.ID].Status)
	assert.Equal(t, entity.JobStatusCompleted, orders.items[created.ID].Items[0].Jobs[0].Status)
}

func TestListByCustomer(t *testing.T) {
	uc, _ := setup()
	ctx := context.Background()
	_, err := uc.Create(ctx, basicOrder())
	require.NoError(t, err)

	list, err := uc.ListByCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.ListByCustomer(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
