package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/decor-ops-api/internal/application/customer"
	"github.com/jhoicas/decor-ops-api/internal/application/sales"
	"github.com/jhoicas/decor-ops-api/internal/application/teamfee"
	"github.com/jhoicas/decor-ops-api/internal/application/usecase"
	"github.com/jhoicas/decor-ops-api/pkg/logger"
)

// RouterDeps dependencias para el router. Los grupos cuyo caso de uso es nil no se registran.
type RouterDeps struct {
	ParseUC     *usecase.ParseUseCase
	CustomerUC  *customer.UseCase
	OrderUC     *sales.OrderUseCase
	OrderPDF    *sales.PDFUseCase
	TeamUC      *usecase.TeamUseCase
	TeamFeeUC   *teamfee.UseCase
	SettingsUC  *usecase.SettingsUseCase
	RateLimiter *IPRateLimiter
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	// Parser de texto libre (limitado por IP)
	if deps.ParseUC != nil {
		parseHandler := NewParseHandler(deps.ParseUC)
		parse := api.Group("/parse")
		if deps.RateLimiter != nil {
			parse.Use(deps.RateLimiter.Middleware())
		}
		parse.Post("/address", parseHandler.Parse)
	}

	// Customers
	if deps.CustomerUC != nil {
		customers := api.Group("/customers")
		customerHandler := NewCustomerHandler(deps.CustomerUC)
		customers.Post("/", customerHandler.Create)
		customers.Get("/", customerHandler.List)
		customers.Get("/:id", customerHandler.GetByID)
		customers.Put("/:id", customerHandler.Update)
		customers.Delete("/:id", customerHandler.Delete)
		customers.Post("/:id/parse", customerHandler.ApplyParsed)
	}

	// Orders
	if deps.OrderUC != nil {
		orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDF)
		orders := api.Group("/orders")
		orders.Post("/", orderHandler.Create)
		orders.Post("/summary", orderHandler.Preview)
		orders.Get("/:id", orderHandler.GetByID)
		orders.Post("/:id/payments", orderHandler.AddPayment)
		orders.Get("/:id/outstanding", orderHandler.Outstanding)
		orders.Get("/:id/pdf", orderHandler.DownloadPDF)
		orders.Patch("/:id/jobs/:jobId/status", orderHandler.UpdateJobStatus)
		api.Get("/customers/:id/orders", orderHandler.ListByCustomer)
	}

	// Teams
	if deps.TeamUC != nil && deps.TeamFeeUC != nil {
		teams := api.Group("/teams")
		teamHandler := NewTeamHandler(deps.TeamUC, deps.TeamFeeUC)
		teams.Post("/", teamHandler.Create)
		teams.Get("/", teamHandler.List)
		teams.Get("/:id", teamHandler.GetByID)
		teams.Put("/:id", teamHandler.Update)
		teams.Get("/:id/outstanding", teamHandler.Outstanding)
		teams.Get("/:id/service-fees", teamHandler.ServiceFees)
	}

	// Service fees
	if deps.TeamFeeUC != nil {
		fees := api.Group("/service-fees")
		feeHandler := NewServiceFeeHandler(deps.TeamFeeUC)
		fees.Post("/", feeHandler.Create)
		fees.Get("/:id", feeHandler.GetByID)
		fees.Delete("/:id", feeHandler.Delete)
		fees.Post("/:id/adjustments", feeHandler.AddAdjustment)
		fees.Delete("/:id/adjustments/:adjustmentId", feeHandler.DeleteAdjustment)
		fees.Post("/:id/payments", feeHandler.AddPayment)
		fees.Put("/:id/jobs", feeHandler.LinkJobs)
		fees.Delete("/:id/jobs/:jobId", feeHandler.UnlinkJob)
	}

	// Settings
	if deps.SettingsUC != nil {
		settingsHandler := NewSettingsHandler(deps.SettingsUC)
		api.Get("/settings", settingsHandler.Get)
		api.Put("/settings", settingsHandler.Update)
	}
}
