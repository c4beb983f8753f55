package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/application/usecase"
)

// ParseHandler expone el parser de direcciones/datos fiscales en texto libre.
type ParseHandler struct {
	uc *usecase.ParseUseCase
}

// NewParseHandler construye el handler.
func NewParseHandler(uc *usecase.ParseUseCase) *ParseHandler {
	return &ParseHandler{uc: uc}
}

// Parse POST /api/parse/address
func (h *ParseHandler) Parse(c *fiber.Ctx) error {
	var in dto.ParseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Parse(in))
}
