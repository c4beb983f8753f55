package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/decor-ops-api/internal/application/customer"
	"github.com/jhoicas/decor-ops-api/internal/application/sales"
	"github.com/jhoicas/decor-ops-api/internal/application/teamfee"
	"github.com/jhoicas/decor-ops-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/decor-ops-api/internal/infrastructure/pdf"
	"github.com/jhoicas/decor-ops-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/decor-ops-api/internal/interfaces/http"
	"github.com/jhoicas/decor-ops-api/pkg/config"
	"github.com/jhoicas/decor-ops-api/pkg/logger"
	"github.com/jhoicas/decor-ops-api/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	feeRepo := postgres.NewServiceFeeRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	formatter := money.NewFormatterFromLocale(cfg.Shop.Locale)

	settingsUC := usecase.NewSettingsUseCase(settingsRepo, usecase.ShopDefaults{
		ShopName:    cfg.App.Name,
		VATRate:     decimal.NewFromFloat(cfg.Shop.VATRate),
		VATIncluded: cfg.Shop.VATIncluded,
	})
	parseUC := usecase.NewParseUseCase()
	customerUC := customer.NewUseCase(customerRepo, txRunner, log)
	orderUC := sales.NewOrderUseCase(orderRepo, customerRepo, txRunner, settingsUC, formatter, log)
	teamUC := usecase.NewTeamUseCase(teamRepo)
	teamFeeUC := teamfee.NewUseCase(feeRepo, teamRepo, txRunner, decimal.NewFromFloat(cfg.Shop.DeductPercent), log)

	// PDF: documento del pedido con saldo total del cliente y QR de referencia
	pdfGenerator := infrapdf.NewMarotoOrderGenerator(formatter, infrapdf.FontFiles{
		Regular: cfg.PDF.FontRegular,
		Bold:    cfg.PDF.FontBold,
	})
	orderPDFUC := sales.NewPDFUseCase(orderRepo, customerRepo, settingsUC, pdfGenerator)

	rateLimiter := httpRouter.NewIPRateLimiter(ctx, cfg.RateLimit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Decor Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ParseUC:     parseUC,
		CustomerUC:  customerUC,
		OrderUC:     orderUC,
		OrderPDF:    orderPDFUC,
		TeamUC:      teamUC,
		TeamFeeUC:   teamFeeUC,
		SettingsUC:  settingsUC,
		RateLimiter: rateLimiter,
		Log:         log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
