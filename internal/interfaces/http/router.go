package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/alerts"
	"github.com/gestock/gestock-api/internal/application/analytics"
	"github.com/gestock/gestock-api/internal/application/auth"
	"github.com/gestock/gestock-api/internal/application/inventory"
	"github.com/gestock/gestock-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Register  *inventory.RegisterService
	Ledger    *inventory.LedgerUseCase
	Summaries *analytics.SummaryUseCase
	Alerts    *alerts.UseCase
	Reports   *pdf.MarotoReportGenerator
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Libro de movimientos (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Register, deps.Ledger)
	movements.Post("/entries", movementHandler.RecordEntry)
	movements.Post("/exits", movementHandler.RecordExit)
	movements.Get("/", movementHandler.List)
	movements.Delete("/:id", movementHandler.Delete)
	movements.Delete("/", movementHandler.Clear)

	// Resúmenes y alertas (protegido)
	analyticsHandler := NewAnalyticsHandler(deps.Summaries, deps.Alerts)
	summaries := protected.Group("/summaries")
	summaries.Get("/daily", analyticsHandler.Daily)
	summaries.Get("/weekly", analyticsHandler.Weekly)
	protected.Get("/alerts", analyticsHandler.Alerts)

	// Reportes PDF (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Summaries, deps.Alerts, deps.Reports)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/weekly", reportHandler.Weekly)
	reports.Get("/alerts", reportHandler.Alerts)
}
