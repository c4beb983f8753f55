package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/application/sales"
	"github.com/jhoicas/decor-ops-api/internal/domain"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

type captureGenerator struct {
	doc sales.OrderDocument
	err error
}

func (g *captureGenerator) GenerateOrderPDF(_ context.Context, doc sales.OrderDocument) ([]byte, error) {
	g.doc = doc
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.7"), nil
}

func TestDownloadOrderPDF(t *testing.T) {
	uc, orders := setup()
	ctx := context.Background()
	created, err := uc.Create(ctx, basicOrder())
	require.NoError(t, err)

	customers := &memCustomers{items: map[string]*entity.Customer{"c1": {ID: "c1", Name: "คุณสมชาย"}}}
	settings := fixedSettings{s: entity.ShopSettings{ShopName: "ร้านม่านสวย", VATRate: decimal.RequireFromString("0.07"), VATIncluded: true}}
	gen := &captureGenerator{}
	pdfUC := sales.NewPDFUseCase(orders, customers, settings, gen)

	data, filename, err := pdfUC.DownloadOrderPDF(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
	assert.Equal(t, "pedido_"+created.OrderNumber+".pdf", filename)
	assert.Equal(t, "ร้านม่านสวย", gen.doc.Shop.ShopName)
	assert.Equal(t, "คุณสมชาย", gen.doc.Customer.Name)
	assert.InDelta(t, 1340, gen.doc.Summary.Outstanding, tol)
	assert.InDelta(t, 1340, gen.doc.GrandOutstanding, tol)

	_, _, err = pdfUC.DownloadOrderPDF(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	boom := errors.New("boom")
	gen.err = boom
	_, _, err = pdfUC.DownloadOrderPDF(ctx, created.ID)
	assert.ErrorIs(t, err, boom)
}
