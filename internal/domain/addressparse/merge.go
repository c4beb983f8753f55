package addressparse

import "github.com/jhoicas/decor-ops-api/internal/domain/entity"

// Target registro destino de un Result. Es una unión cerrada: solo los cuatro tipos de este
// paquete la implementan.
type Target interface {
	target()
}

// TaxInvoiceTarget aplica nombre fiscal, NIT tailandés, sucursal y dirección.
type TaxInvoiceTarget struct{ Invoice *entity.TaxInvoice }

// DeliveryTarget aplica etiqueta (persona + empresa), dirección y enlace de mapa.
type DeliveryTarget struct{ Address *entity.DeliveryAddress }

// ContactTarget aplica nombre de contacto, teléfono y email.
type ContactTarget struct{ Contact *entity.Contact }

// BasicInfoTarget aplica nombre, teléfono y email a la ficha del cliente.
type BasicInfoTarget struct{ Customer *entity.Customer }

func (TaxInvoiceTarget) target() {}
func (DeliveryTarget) target()   {}
func (ContactTarget) target()    {}
func (BasicInfoTarget) target()  {}

// Merge vuelca r en el destino. Solo sobrescribe con valores no vacíos: lo que el parser no
// encontró conserva el valor existente. Un destino con puntero nil no hace nada.
func Merge(t Target, r Result) {
	switch v := t.(type) {
	case TaxInvoiceTarget:
		if v.Invoice == nil {
			return
		}
		set(&v.Invoice.CompanyName, r.CompanyName)
		set(&v.Invoice.TaxID, r.TaxID)
		set(&v.Invoice.Branch, r.Branch)
		mergeAddress(&v.Invoice.Address, r)
	case DeliveryTarget:
		if v.Address == nil {
			return
		}
		set(&v.Address.Label, r.FullLabel)
		set(&v.Address.MapsURL, r.MapsURL)
		mergeAddress(&v.Address.Address, r)
	case ContactTarget:
		if v.Contact == nil {
			return
		}
		name := r.ContactName
		if name == "" {
			name = r.FullLabel
		}
		set(&v.Contact.Name, name)
		set(&v.Contact.Phone, r.Phone)
		set(&v.Contact.Email, r.Email)
	case BasicInfoTarget:
		if v.Customer == nil {
			return
		}
		set(&v.Customer.Name, r.FullLabel)
		set(&v.Customer.Phone, r.Phone)
		set(&v.Customer.Email, r.Email)
	}
}

// AddressOf devuelve la parte de dirección del resultado.
func (r Result) AddressOf() entity.Address {
	return entity.Address{
		Number:   r.AddrNumber,
		Moo:      r.AddrMoo,
		Village:  r.AddrVillage,
		Soi:      r.AddrSoi,
		Road:     r.AddrRoad,
		Tambon:   r.AddrTambon,
		Amphoe:   r.AddrAmphoe,
		Province: r.AddrProvince,
		Zipcode:  r.AddrZipcode,
	}
}

func mergeAddress(dst *entity.Address, r Result) {
	src := r.AddressOf()
	set(&dst.Number, src.Number)
	set(&dst.Moo, src.Moo)
	set(&dst.Village, src.Village)
	set(&dst.Soi, src.Soi)
	set(&dst.Road, src.Road)
	set(&dst.Tambon, src.Tambon)
	set(&dst.Amphoe, src.Amphoe)
	set(&dst.Province, src.Province)
	set(&dst.Zipcode, src.Zipcode)
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
