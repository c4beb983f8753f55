package dto

// Destinos válidos para aplicar texto parseado a un cliente.
const (
	ParseTargetTaxInvoice = "tax_invoice"
	ParseTargetDelivery   = "delivery"
	ParseTargetContact    = "contact"
	ParseTargetBasic      = "basic"
)

// ParseRequest body para POST /api/parse/address.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse campos extraídos; vacíos si no hubo coincidencia.
type ParseResponse struct {
	CompanyName  string `json:"company_name"`
	TaxID        string `json:"tax_id"`
	Branch       string `json:"branch"`
	AddrNumber   string `json:"addr_number"`
	AddrMoo      string `json:"addr_moo"`
	AddrVillage  string `json:"addr_village"`
	AddrSoi      string `json:"addr_soi"`
	AddrRoad     string `json:"addr_road"`
	AddrTambon   string `json:"addr_tambon"`
	AddrAmphoe   string `json:"addr_amphoe"`
	AddrProvince string `json:"addr_province"`
	AddrZipcode  string `json:"addr_zipcode"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	FullLabel    string `json:"full_label"`
	MapsURL      string `json:"maps_url"`
	ContactName  string `json:"contact_name"`
}

// ApplyParsedRequest body para POST /api/customers/:id/parse.
// Index selecciona el sub-registro a completar; nil o fuera de rango agrega uno nuevo.
type ApplyParsedRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"` // tax_invoice | delivery | contact | basic
	Index  *int   `json:"index,omitempty"`
}
