// Package pdf genera el documento de pedido (ใบเสนอราคา / ใบสั่งขาย) en A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + เลขประจำตัวผู้เสียภาษี │  N° Pedido + Fecha  │
//	│  CLIENTE: nombre, contacto y datos de factura fiscal         │
//	│  TABLA: # | Producto | Cant | P.Unit | Importe | Estado      │
//	│  TOTALES: Subtotal / Envío / Descuento / Base / IVA / Total  │
//	│  PAGOS: plan de pagos + saldo del pedido y del cliente        │
//	│  FOOTER: QR con la referencia del pedido                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/decor-ops-api/internal/application/sales"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
	"github.com/jhoicas/decor-ops-api/internal/domain/fulfillment"
	"github.com/jhoicas/decor-ops-api/internal/domain/pricing"
	"github.com/jhoicas/decor-ops-api/pkg/money"
)

var _ sales.OrderPDFGenerator = (*MarotoOrderGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 94, Green: 53, Blue: 31}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// thaiFontFamily nombre con el que se registra la fuente TTF tailandesa.
const thaiFontFamily = "sarabun"

// FontFiles rutas a una fuente TTF con glifos tailandeses (por ejemplo Sarabun).
// Vacío usa helvetica, que no dibuja texto tailandés.
type FontFiles struct {
	Regular string
	Bold    string
}

// MarotoOrderGenerator implementa sales.OrderPDFGenerator usando Maroto v2.
type MarotoOrderGenerator struct {
	formatter *money.Formatter
	fonts     FontFiles
}

// NewMarotoOrderGenerator construye el generador.
func NewMarotoOrderGenerator(formatter *money.Formatter, fonts FontFiles) *MarotoOrderGenerator {
	if formatter == nil {
		formatter = money.NewFormatterFromLocale("th")
	}
	return &MarotoOrderGenerator{formatter: formatter, fonts: fonts}
}

// GenerateOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoOrderGenerator) GenerateOrderPDF(_ context.Context, doc sales.OrderDocument) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("Pedido "+doc.Order.OrderNumber, true).
		WithAuthor(doc.Shop.ShopName, true)

	if g.fonts.Regular != "" {
		bold := g.fonts.Bold
		if bold == "" {
			bold = g.fonts.Regular
		}
		fonts, err := repository.New().
			AddUTF8Font(thaiFontFamily, fontstyle.Normal, g.fonts.Regular).
			AddUTF8Font(thaiFontFamily, fontstyle.Bold, bold).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente: %w", err)
		}
		builder = builder.WithCustomFonts(fonts).
			WithDefaultFont(&props.Font{Family: thaiFontFamily, Size: 10})
	} else {
		builder = builder.WithDefaultFont(&props.Font{Family: "helvetica", Size: 9})
	}

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRows(doc.Customer)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(doc.Order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(doc.Summary))

	if len(doc.Order.Payments) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(g.paymentRows(doc.Order.Payments)...)
	}
	m.AddRows(g.balanceRow(doc.Summary, doc.GrandOutstanding))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: tienda (izq) y número de pedido + fecha (der).
func headerRow(doc sales.OrderDocument) core.Row {
	shop := doc.Shop
	taxLine := "เลขประจำตัวผู้เสียภาษี: " + nonEmpty(shop.TaxID, "-")
	if shop.Branch != "" {
		taxLine += "  (" + shop.Branch + ")"
	}
	return row.New(24).Add(
		col.New(7).Add(
			text.New(shop.ShopName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(taxLine, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(shop.Address.String(), props.Text{Size: 8, Top: 14, Color: colorGray}),
			text.New(fmt.Sprintf("โทร %s   %s", nonEmpty(shop.Phone, "-"), shop.Email), props.Text{Size: 8, Top: 19, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ใบสั่งขาย / ORDER", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(doc.Order.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("วันที่ "+doc.Order.OrderDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
			text.New("สถานะ "+doc.Order.Status, props.Text{Size: 8, Align: align.Right, Top: 19, Color: colorGray}),
		),
	)
}

// customerRows: cliente y, si existe, la primera factura fiscal y la primera dirección de entrega.
func customerRows(c *entity.Customer) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("ลูกค้า / CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s   โทร %s   %s", c.Name, nonEmpty(c.Phone, "-"), c.Email), props.Text{Size: 9, Top: 6}),
		)),
	}
	if len(c.TaxInvoices) > 0 {
		t := c.TaxInvoices[0]
		rows = append(rows, row.New(11).Add(col.New(12).Add(
			text.New(fmt.Sprintf("ใบกำกับภาษี: %s  เลขประจำตัวผู้เสียภาษี %s  %s", t.CompanyName, t.TaxID, t.Branch),
				props.Text{Size: 8, Top: 1}),
			text.New(t.Address.String(), props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	if len(c.Addresses) > 0 {
		a := c.Addresses[0]
		rows = append(rows, row.New(11).Add(col.New(12).Add(
			text.New("ที่อยู่จัดส่ง: "+a.Label, props.Text{Size: 8, Top: 1}),
			text.New(a.Address.String(), props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("รายการ", 4, align.Left),
		h("จำนวน", 1, align.Center),
		h("ราคา/หน่วย", 2, align.Right),
		h("จำนวนเงิน", 2, align.Right),
		h("สถานะ", 2, align.Center),
	)
}

func (g *MarotoOrderGenerator) itemRows(items []entity.OrderItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for i, it := range items {
		qty, price := pricing.FromDecimal(it.Qty), pricing.FromDecimal(it.UnitPrice)
		name := it.ProductName
		if it.Description != "" {
			name += " - " + it.Description
		}
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Qty.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.formatter.Format(price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.formatter.Format(qty*price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(fulfillment.ItemStatus(it), props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray})),
		))
	}
	return out
}

// totalsRow: bloque de totales alineado a la derecha. La etiqueta de IVA indica si está incluido.
func (g *MarotoOrderGenerator) totalsRow(s pricing.Summary) core.Row {
	vatLabel := fmt.Sprintf("ภาษีมูลค่าเพิ่ม %s%%:", money.FormatRatePercent(s.VATRate))
	if s.VATIncluded {
		vatLabel = fmt.Sprintf("ภาษีมูลค่าเพิ่ม %s%% (รวมในราคา):", money.FormatRatePercent(s.VATRate))
	}
	lines := []struct {
		label string
		value float64
	}{
		{"รวมเป็นเงิน:", s.Subtotal},
		{"ค่าจัดส่ง:", s.ShippingFee},
		{"ส่วนลด:", -s.DiscountAmt},
		{"ราคาก่อนภาษี:", s.PreVat},
		{vatLabel, s.VatAmt},
	}

	labels := col.New(4)
	values := col.New(3)
	top := 1.0
	for _, l := range lines {
		labels.Add(text.New(l.label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top}))
		values.Add(text.New(g.formatter.Format(l.value), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}))
		top += 5
	}
	labels.Add(text.New("ยอดรวมทั้งสิ้น:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: top}))
	values.Add(text.New(g.formatter.FormatBaht(s.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top}))

	return row.New(top+7).Add(col.New(5), labels, values)
}

func (g *MarotoOrderGenerator) paymentRows(payments []entity.OrderPayment) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("กำหนดชำระ / PLAN DE PAGOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, p := range payments {
		state := "รอชำระ"
		date := "-"
		if p.DueDate != nil {
			date = p.DueDate.Format("02/01/2006")
		}
		if p.PaidDate != nil {
			state = "ชำระแล้ว"
			date = p.PaidDate.Format("02/01/2006")
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(date, props.Text{Size: 8, Left: 2})),
			col.New(3).Add(text.New(nonEmpty(p.Method, "-"), props.Text{Size: 8})),
			col.New(3).Add(text.New(state, props.Text{Size: 8, Color: colorGray})),
			col.New(3).Add(text.New(g.formatter.Format(pricing.FromDecimal(p.Amount)), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func (g *MarotoOrderGenerator) balanceRow(s pricing.Summary, grand float64) core.Row {
	return row.New(16).Add(
		col.New(5),
		col.New(4).Add(
			text.New("ชำระแล้ว:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2}),
			text.New("ค้างชำระ:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 7}),
			text.New("ยอดค้างรวมของลูกค้า:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 12}),
		),
		col.New(3).Add(
			text.New(g.formatter.Format(s.TotalPaid), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 2}),
			text.New(g.formatter.FormatBaht(s.Outstanding), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 7}),
			text.New(g.formatter.FormatBaht(grand), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 12}),
		),
	)
}

// footerRow: QR con la referencia del pedido y el saldo, más nota del pedido.
func (g *MarotoOrderGenerator) footerRow(doc sales.OrderDocument) core.Row {
	ref := OrderReference(doc.Order.OrderNumber, doc.Shop.PromptPayID, doc.Summary.Outstanding)
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("อ้างอิง "+doc.Order.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: colorPrimary}),
			text.New(doc.Order.Note, props.Text{Size: 8, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

// OrderReference contenido del QR: número de pedido, PromptPay (si hay) y saldo con 2 decimales.
func OrderReference(orderNumber, promptPayID string, outstanding float64) string {
	ref := fmt.Sprintf("ORDER:%s;AMOUNT:%.2f", orderNumber, money.Round2(outstanding))
	if promptPayID != "" {
		ref += ";PROMPTPAY:" + promptPayID
	}
	return ref
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
