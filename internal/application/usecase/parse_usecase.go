package usecase

import (
	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/domain/addressparse"
)

// ParseUseCase expone el parser de texto libre sin persistir nada.
type ParseUseCase struct{}

// NewParseUseCase construye el caso de uso.
func NewParseUseCase() *ParseUseCase { return &ParseUseCase{} }

// Parse nunca falla: lo que no se reconoce queda vacío.
func (uc *ParseUseCase) Parse(in dto.ParseRequest) dto.ParseResponse {
	return ToParseResponse(addressparse.Parse(in.Text))
}

// ToParseResponse convierte el resultado del parser al DTO.
func ToParseResponse(r addressparse.Result) dto.ParseResponse {
	return dto.ParseResponse{
		CompanyName:  r.CompanyName,
		TaxID:        r.TaxID,
		Branch:       r.Branch,
		AddrNumber:   r.AddrNumber,
		AddrMoo:      r.AddrMoo,
		AddrVillage:  r.AddrVillage,
		AddrSoi:      r.AddrSoi,
		AddrRoad:     r.AddrRoad,
		AddrTambon:   r.AddrTambon,
		AddrAmphoe:   r.AddrAmphoe,
		AddrProvince: r.AddrProvince,
		AddrZipcode:  r.AddrZipcode,
		Phone:        r.Phone,
		Email:        r.Email,
		FullLabel:    r.FullLabel,
		MapsURL:      r.MapsURL,
		ContactName:  r.ContactName,
	}
}
