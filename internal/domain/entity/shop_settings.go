package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopSettings configuración de la tienda (fila única).
type ShopSettings struct {
	ShopName    string
	TaxID       string
	Branch      string
	Address     Address
	Phone       string
	Email       string
	PromptPayID string
	VATRate     decimal.Decimal
	VATIncluded bool
	UpdatedAt   time.Time
}
