package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestock/gestock-api/internal/application/alerts"
	appanalytics "github.com/gestock/gestock-api/internal/application/analytics"
	"github.com/gestock/gestock-api/internal/application/auth"
	"github.com/gestock/gestock-api/internal/application/inventory"
	"github.com/gestock/gestock-api/internal/infrastructure/blobstore"
	"github.com/gestock/gestock-api/internal/infrastructure/catalog"
	infrapdf "github.com/gestock/gestock-api/internal/infrastructure/pdf"
	httpRouter "github.com/gestock/gestock-api/internal/interfaces/http"
	"github.com/gestock/gestock-api/pkg/config"
	"github.com/gestock/gestock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := blobstore.New(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("abrir almacén de movimientos")
	}

	catalogGateway := catalog.New(
		cfg.Catalog.BaseURL,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
	)

	recorder := inventory.NewRecorder(store, catalogGateway)
	registerSvc := inventory.NewRegisterService(recorder, store, catalogGateway, log.Component("register"))
	ledgerUC := inventory.NewLedgerUseCase(store)
	summaryUC := appanalytics.NewSummaryUseCase(store)
	alertsUC := alerts.NewUseCase(catalogGateway)
	reportGenerator := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(
		auth.Credential{
			Username:     cfg.Auth.AdminUser,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Register:  registerSvc,
		Ledger:    ledgerUC,
		Summaries: summaryUC,
		Alerts:    alertsUC,
		Reports:   reportGenerator,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
