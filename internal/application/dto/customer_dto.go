package dto

import (
	"time"

	"github.com/jhoicas/decor-ops-api/internal/domain/entity"
)

// AddressDTO dirección tailandesa desglosada.
type AddressDTO struct {
	Number   string `json:"number,omitempty"`
	Moo      string `json:"moo,omitempty"`
	Village  string `json:"village,omitempty"`
	Soi      string `json:"soi,omitempty"`
	Road     string `json:"road,omitempty"`
	Tambon   string `json:"tambon,omitempty"`
	Amphoe   string `json:"amphoe,omitempty"`
	Province string `json:"province,omitempty"`
	Zipcode  string `json:"zipcode,omitempty"`
}

// TaxInvoiceDTO datos para factura fiscal.
type TaxInvoiceDTO struct {
	ID          string     `json:"id,omitempty"`
	CompanyName string     `json:"company_name"`
	TaxID       string     `json:"tax_id,omitempty"`
	Branch      string     `json:"branch,omitempty"`
	Address     AddressDTO `json:"address"`
}

// DeliveryAddressDTO dirección de entrega.
type DeliveryAddressDTO struct {
	ID      string     `json:"id,omitempty"`
	Label   string     `json:"label"`
	Address AddressDTO `json:"address"`
	MapsURL string     `json:"maps_url,omitempty"`
}

// ContactDTO persona de contacto.
type ContactDTO struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LineID   string `json:"line_id,omitempty"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string               `json:"name"`
	Phone       string               `json:"phone,omitempty"`
	Email       string               `json:"email,omitempty"`
	LineID      string               `json:"line_id,omitempty"`
	Note        string               `json:"note,omitempty"`
	TaxInvoices []TaxInvoiceDTO      `json:"tax_invoices,omitempty"`
	Addresses   []DeliveryAddressDTO `json:"addresses,omitempty"`
	Contacts    []ContactDTO         `json:"contacts,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Reemplaza sub-registros completos.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse cliente con sub-registros.
type CustomerResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Phone       string               `json:"phone,omitempty"`
	Email       string               `json:"email,omitempty"`
	LineID      string               `json:"line_id,omitempty"`
	Note        string               `json:"note,omitempty"`
	TaxInvoices []TaxInvoiceDTO      `json:"tax_invoices"`
	Addresses   []DeliveryAddressDTO `json:"addresses"`
	Contacts    []ContactDTO         `json:"contacts"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// AddressFromEntity convierte la dirección de dominio.
func AddressFromEntity(a entity.Address) AddressDTO {
	return AddressDTO(a)
}

// ToEntity convierte a la dirección de dominio.
func (a AddressDTO) ToEntity() entity.Address {
	return entity.Address(a)
}
