package entity

import "strings"

// Address dirección tailandesa desglosada (บ้านเลขที่, หมู่, ซอย, ถนน, ตำบล, อำเภอ, จังหวัด).
type Address struct {
	Number   string // บ้านเลขที่, admite "64/44-45"
	Moo      string // หมู่
	Village  string // หมู่บ้าน / อาคาร
	Soi      string
	Road     string
	Tambon   string // ตำบล / แขวง
	Amphoe   string // อำเภอ / เขต
	Province string
	Zipcode  string
}

// IsEmpty indica si ningún campo tiene valor.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// String dirección en una línea para documentos. En Bangkok se usa แขวง/เขต en lugar de ตำบล/อำเภอ.
func (a Address) String() string {
	bangkok := strings.Contains(a.Province, "กรุงเทพ") || strings.EqualFold(a.Province, "Bangkok")
	tambon, amphoe, province := "ต.", "อ.", "จ."
	if bangkok {
		tambon, amphoe, province = "แขวง", "เขต", ""
	}

	var parts []string
	add := func(prefix, v string) {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, prefix+v)
		}
	}
	add("", a.Number)
	add("หมู่ ", a.Moo)
	add("", a.Village)
	add("ซอย", a.Soi)
	add("ถนน", a.Road)
	add(tambon, a.Tambon)
	add(amphoe, a.Amphoe)
	add(province, a.Province)
	add("", a.Zipcode)
	return strings.Join(parts, " ")
}
