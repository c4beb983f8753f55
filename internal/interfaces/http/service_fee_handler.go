package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/decor-ops-api/internal/application/dto"
	"github.com/jhoicas/decor-ops-api/internal/application/teamfee"
)

// ServiceFeeHandler lotes de honorarios de equipos.
type ServiceFeeHandler struct {
	uc *teamfee.UseCase
}

// NewServiceFeeHandler construye el handler.
func NewServiceFeeHandler(uc *teamfee.UseCase) *ServiceFeeHandler {
	return &ServiceFeeHandler{uc: uc}
}

// Create POST /api/service-fees
func (h *ServiceFeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateBatch(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/service-fees/:id
func (h *ServiceFeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBatch(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/service-fees/:id
func (h *ServiceFeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBatch(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddAdjustment POST /api/service-fees/:id/adjustments
func (h *ServiceFeeHandler) AddAdjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddAdjustment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteAdjustment DELETE /api/service-fees/:id/adjustments/:adjustmentId
func (h *ServiceFeeHandler) DeleteAdjustment(c *fiber.Ctx) error {
	out, err := h.uc.DeleteAdjustment(c.UserContext(), c.Params("id"), c.Params("adjustmentId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddPayment POST /api/service-fees/:id/payments
func (h *ServiceFeeHandler) AddPayment(c *fiber.Ctx) error {
	var in dto.ServiceFeePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddPayment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LinkJobs PUT /api/service-fees/:id/jobs
func (h *ServiceFeeHandler) LinkJobs(c *fiber.Ctx) error {
	var in dto.LinkJobsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.LinkJobs(c.UserContext(), c.Params("id"), in.JobIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UnlinkJob DELETE /api/service-fees/:id/jobs/:jobId
func (h *ServiceFeeHandler) UnlinkJob(c *fiber.Ctx) error {
	out, err := h.uc.UnlinkJob(c.UserContext(), c.Params("id"), c.Params("jobId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
