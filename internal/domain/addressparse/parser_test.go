package addressparse_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/internal/domain/addressparse"
)

func TestParse_FacturaCompletaConEmpresa(t *testing.T) {
	r := addressparse.Parse("บริษัท ทดสอบ จำกัด 123 หมู่ 4 ถ.สุขุมวิท ตำบลคลองเตย อำเภอคลองเตย กรุงเทพ 10110 0812345678 test@mail.com")

	assert.Equal(t, "บริษัท ทดสอบ จำกัด", r.CompanyName)
	assert.Equal(t, "123", r.AddrNumber)
	assert.Equal(t, "4", r.AddrMoo)
	assert.Equal(t, "สุขุมวิท", r.AddrRoad)
	assert.Equal(t, "คลองเตย", r.AddrTambon)
	assert.Equal(t, "คลองเตย", r.AddrAmphoe)
	assert.Equal(t, "กรุงเทพมหานคร", r.AddrProvince)
	assert.Equal(t, "10110", r.AddrZipcode)
	assert.Equal(t, "0812345678", r.Phone)
	assert.Equal(t, "test@mail.com", r.Email)
	assert.Equal(t, r.CompanyName, r.FullLabel)
	assert.Empty(t, r.AddrVillage)
	assert.Empty(t, r.TaxID)
}

func TestParse_TextoVacioDevuelveCamposVacios(t *testing.T) {
	assert.Equal(t, addressparse.Result{}, addressparse.Parse(""))
	assert.Equal(t, addressparse.Result{}, addressparse.Parse("   \n\t  "))
}

func TestParse_SoloNombreEsIdempotente(t *testing.T) {
	first := addressparse.Parse("บริษัท ทดสอบ จำกัด 123 หมู่ 4 ถ.สุขุมวิท กรุงเทพ 10110")
	again := addressparse.Parse(first.CompanyName)

	assert.Equal(t, addressparse.Result{
		CompanyName: first.CompanyName,
		FullLabel:   first.CompanyName,
	}, again)
}

func TestParse_TaxIDPrimeraCorrida(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "เลขประจำตัวผู้เสียภาษี 0105561234567 บริษัท ก จำกัด", "0105561234567"},
		{"dos corridas", "0105561234567 และ 0994000165234", "0105561234567"},
		{"corrida larga toma los primeros 13", "12345678901234 ร้านเอ", "1234567890123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := addressparse.Parse(tc.in)
			require.Equal(t, tc.want, r.TaxID)

			rest := r
			rest.TaxID = ""
			assert.NotContains(t, fmt.Sprintf("%+v", rest), tc.want,
				"el tax ID no debe reaparecer en otro campo")
		})
	}
}

func TestParse_Sucursal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"บริษัท แสงไทย จำกัด (สำนักงานใหญ่) 0105561234567", addressparse.HeadOffice},
		{"ABC Lighting Co., Ltd. Head Office", addressparse.HeadOffice},
		{"บริษัท เอ จำกัด สาขา 5", "5"},
		{"บริษัท เอ จำกัด สาขา 00001 10110", "00001"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, addressparse.Parse(tc.in).Branch)
		})
	}
}

func TestParse_SucursalNoQuedaEnNombre(t *testing.T) {
	r := addressparse.Parse("บริษัท แสงไทย จำกัด (สำนักงานใหญ่) 0105561234567")
	assert.Equal(t, "บริษัท แสงไทย จำกัด", r.CompanyName)

	r = addressparse.Parse("ABC Lighting Co., Ltd. Head Office")
	assert.Equal(t, "ABC Lighting Co., Ltd.", r.CompanyName)
}

func TestParse_EmpresaAlFinalSobrescribeCompanyName(t *testing.T) {
	r := addressparse.Parse("คุณสมชาย ใจดี 99/1 หมู่ 2 ร้านไฟสวย ต.บางพลี อ.บางพลี จ.สมุทรปราการ 10540")

	assert.Equal(t, "ร้านไฟสวย", r.CompanyName, "la factura va a nombre de la empresa")
	assert.Equal(t, "คุณสมชาย ใจดี ร้านไฟสวย", r.FullLabel, "la entrega conserva persona y empresa")
	assert.Equal(t, "คุณสมชาย ใจดี", r.ContactName)
	assert.Equal(t, "99/1", r.AddrNumber)
	assert.Equal(t, "2", r.AddrMoo)
	assert.Equal(t, "บางพลี", r.AddrTambon)
	assert.Equal(t, "บางพลี", r.AddrAmphoe)
	assert.Equal(t, "สมุทรปราการ", r.AddrProvince)
	assert.Equal(t, "10540", r.AddrZipcode)
	assert.Empty(t, r.AddrVillage)
}

func TestParse_AldeaSoiYNumeroCompuesto(t *testing.T) {
	r := addressparse.Parse("64/44-45 หมู่บ้านสวนหลวง ซอยสุขุมวิท 77 ถนนสุขุมวิท แขวงสวนหลวง เขตสวนหลวง กรุงเทพมหานคร 10250")

	assert.Equal(t, "64/44-45", r.AddrNumber)
	assert.Equal(t, "หมู่บ้านสวนหลวง", r.AddrVillage)
	assert.Equal(t, "สุขุมวิท 77", r.AddrSoi)
	assert.Equal(t, "สุขุมวิท", r.AddrRoad)
	assert.Equal(t, "สวนหลวง", r.AddrTambon)
	assert.Equal(t, "สวนหลวง", r.AddrAmphoe)
	assert.Equal(t, addressparse.BangkokTH, r.AddrProvince)
	assert.Equal(t, "10250", r.AddrZipcode)
	assert.Empty(t, r.AddrMoo)
	assert.Empty(t, r.CompanyName)
}

func TestParse_AbreviaturasPegadas(t *testing.T) {
	r := addressparse.Parse("12 ม.3 ต.บ้านใหม่ อ.ปากเกร็ด จ.นนทบุรี 11120")

	assert.Equal(t, "12", r.AddrNumber)
	assert.Equal(t, "3", r.AddrMoo)
	assert.Equal(t, "บ้านใหม่", r.AddrTambon)
	assert.Equal(t, "ปากเกร็ด", r.AddrAmphoe)
	assert.Equal(t, "นนทบุรี", r.AddrProvince)
	assert.Equal(t, "11120", r.AddrZipcode)
}

func TestParse_TelefonoConSeparadoresJuntoAlCodigoPostal(t *testing.T) {
	r := addressparse.Parse("คุณวิภา แขวงบางรัก เขตบางรัก กรุงเทพ 10500 02-123-4567")

	assert.Equal(t, "021234567", r.Phone)
	assert.Equal(t, "10500", r.AddrZipcode)
	assert.Equal(t, "คุณวิภา", r.CompanyName)
	assert.Equal(t, "บางรัก", r.AddrTambon)
	assert.Equal(t, "บางรัก", r.AddrAmphoe)
}

func TestParse_SoloPrimerTelefono(t *testing.T) {
	r := addressparse.Parse("0811111111 0822222222")
	assert.Equal(t, "0811111111", r.Phone)
}

func TestParse_EmailYMapa(t *testing.T) {
	r := addressparse.Parse("ร้านโคมไฟ test.shop@gmail.com https://maps.app.goo.gl/AbCd123")

	assert.Equal(t, "test.shop@gmail.com", r.Email)
	assert.Equal(t, "https://maps.app.goo.gl/AbCd123", r.MapsURL)
	assert.Equal(t, "ร้านโคมไฟ", r.CompanyName)
}

func TestParse_TextoNoReconocido(t *testing.T) {
	r := addressparse.Parse("  hello   world  ")
	assert.Equal(t, addressparse.Result{CompanyName: "hello world", FullLabel: "hello world"}, r)
}

func TestParse_QuitaPrefijoDeNombre(t *testing.T) {
	r := addressparse.Parse("ชื่อ: บริษัท ดีไซน์ จำกัด")
	assert.Equal(t, "บริษัท ดีไซน์ จำกัด", r.CompanyName)
}

func TestParse_EliminaCaracteresInvisibles(t *testing.T) {
	r := addressparse.Parse("บริษัท\u200b ทดสอบ\u200c จำกัด\ufeff")
	assert.Equal(t, "บริษัท ทดสอบ จำกัด", r.CompanyName)
}
