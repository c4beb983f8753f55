package dto

import "github.com/shopspring/decimal"

// ShopSettingsDTO configuración de la tienda (GET y PUT /api/settings).
type ShopSettingsDTO struct {
	ShopName    string          `json:"shop_name"`
	TaxID       string          `json:"tax_id,omitempty"`
	Branch      string          `json:"branch,omitempty"`
	Address     AddressDTO      `json:"address"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	PromptPayID string          `json:"promptpay_id,omitempty"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	VATIncluded bool            `json:"vat_included"`
}
