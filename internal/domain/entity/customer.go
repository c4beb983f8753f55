package entity

import "time"

// Customer cliente de la tienda con sus sub-registros (facturas fiscales, direcciones de entrega, contactos).
type Customer struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	LineID      string
	Note        string
	TaxInvoices []TaxInvoice
	Addresses   []DeliveryAddress
	Contacts    []Contact
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaxInvoice datos para emitir ใบกำกับภาษี.
type TaxInvoice struct {
	ID          string
	CustomerID  string
	CompanyName string
	TaxID       string // 13 dígitos
	Branch      string // "สำนักงานใหญ่" o número de sucursal
	Address     Address
}

// DeliveryAddress dirección de entrega / instalación.
type DeliveryAddress struct {
	ID         string
	CustomerID string
	Label      string // persona y/o empresa que recibe
	Address    Address
	MapsURL    string
}

// Contact persona de contacto del cliente.
type Contact struct {
	ID         string
	CustomerID string
	Name       string
	Position   string
	Phone      string
	Email      string
	LineID     string
}
