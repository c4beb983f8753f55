package addressparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/decor-ops-api/internal/domain/addressparse"
	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

func TestMerge_TaxInvoiceConservaCamposNoEncontrados(t *testing.T) {
	inv := &entity.TaxInvoice{
		CompanyName: "เดิม",
		Branch:      "00002",
		Address:     entity.Address{Road: "เดิม", Zipcode: "99999"},
	}
	r := addressparse.Parse("บริษัท ทดสอบ จำกัด 0105561234567 123 ถ.สุขุมวิท กรุงเทพ 10110")

	addressparse.Merge(addressparse.TaxInvoiceTarget{Invoice: inv}, r)

	assert.Equal(t, "บริษัท ทดสอบ จำกัด", inv.CompanyName)
	assert.Equal(t, "0105561234567", inv.TaxID)
	assert.Equal(t, "00002", inv.Branch, "sin sucursal en el texto se conserva la existente")
	assert.Equal(t, "สุขุมวิท", inv.Address.Road)
	assert.Equal(t, "10110", inv.Address.Zipcode)
	assert.Equal(t, "123", inv.Address.Number)
}

func TestMerge_DeliveryUsaFullLabel(t *testing.T) {
	addr := &entity.DeliveryAddress{Label: "บ้าน"}
	r := addressparse.Parse("คุณสมชาย ใจดี 99/1 หมู่ 2 ร้านไฟสวย ต.บางพลี อ.บางพลี จ.สมุทรปราการ 10540 https://maps.app.goo.gl/x1")

	addressparse.Merge(addressparse.DeliveryTarget{Address: addr}, r)

	assert.Equal(t, "คุณสมชาย ใจดี ร้านไฟสวย", addr.Label)
	assert.Equal(t, "https://maps.app.goo.gl/x1", addr.MapsURL)
	assert.Equal(t, "99/1", addr.Address.Number)
	assert.Equal(t, "สมุทรปราการ", addr.Address.Province)
}

func TestMerge_ContactPrefiereNombreConTitulo(t *testing.T) {
	c := &entity.Contact{Position: "จัดซื้อ"}
	r := addressparse.Parse("คุณวิภา แขวงบางรัก เขตบางรัก กรุงเทพ 10500 02-123-4567 wipa@shop.co.th")

	addressparse.Merge(addressparse.ContactTarget{Contact: c}, r)

	assert.Equal(t, "คุณวิภา", c.Name)
	assert.Equal(t, "021234567", c.Phone)
	assert.Equal(t, "wipa@shop.co.th", c.Email)
	assert.Equal(t, "จัดซื้อ", c.Position)
}

func TestMerge_ContactSinTituloUsaFullLabel(t *testing.T) {
	c := &entity.Contact{}
	addressparse.Merge(addressparse.ContactTarget{Contact: c}, addressparse.Result{FullLabel: "ร้านโคมไฟ"})
	assert.Equal(t, "ร้านโคมไฟ", c.Name)
}

func TestMerge_BasicInfo(t *testing.T) {
	cu := &entity.Customer{Name: "เดิม", LineID: "@shop"}
	r := addressparse.Parse("ร้านโคมไฟ 0891234567")

	addressparse.Merge(addressparse.BasicInfoTarget{Customer: cu}, r)

	assert.Equal(t, "ร้านโคมไฟ", cu.Name)
	assert.Equal(t, "0891234567", cu.Phone)
	assert.Equal(t, "@shop", cu.LineID)
}

func TestMerge_ResultadoVacioNoModifica(t *testing.T) {
	inv := &entity.TaxInvoice{CompanyName: "X", TaxID: "1", Address: entity.Address{Moo: "3"}}
	before := *inv

	addressparse.Merge(addressparse.TaxInvoiceTarget{Invoice: inv}, addressparse.Result{})

	assert.Equal(t, before, *inv)
}

func TestMerge_PunteroNilNoEntraEnPanico(t *testing.T) {
	r := addressparse.Parse("บริษัท ทดสอบ จำกัด")
	assert.NotPanics(t, func() {
		addressparse.Merge(addressparse.TaxInvoiceTarget{}, r)
		addressparse.Merge(addressparse.DeliveryTarget{}, r)
		addressparse.Merge(addressparse.ContactTarget{}, r)
		addressparse.Merge(addressparse.BasicInfoTarget{}, r)
	})
}
