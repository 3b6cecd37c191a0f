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

	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	infrapdf "github.com/jhoicas/Facturacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	httpRouter "github.com/jhoicas/Facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ingresoRepo := postgres.NewIngresoRepository(pool)
	socioRepo := postgres.NewSocioRepository(pool)
	resumenRepo := postgres.NewResumenRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	// Cliente del API externo de facturación electrónica (REST + Bearer)
	gateway := infrasunat.NewClient(cfg.Facturacion, log)

	boletaUC := billing.NewBoletaUseCase(gateway, ingresoRepo, socioRepo, cfg.Facturacion, log)
	notaUC := billing.NewNotaCreditoUseCase(gateway, ingresoRepo, socioRepo, cfg.Facturacion, log)
	resumenUC := billing.NewResumenUseCase(gateway, resumenRepo, log)
	estadoUC := billing.NewConsultarEstadoUseCase(gateway, resumenRepo, log)

	// PDF: reporte de ingresos del período
	reporteGenerator := infrapdf.NewMarotoReporteGenerator()
	reporteUC := billing.NewReporteUseCase(ingresoRepo, reporteGenerator, log)

	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 70, // mayor que el timeout del gateway
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturación API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		BoletaUC:  boletaUC,
		NotaUC:    notaUC,
		ResumenUC: resumenUC,
		EstadoUC:  estadoUC,
		ReporteUC: reporteUC,
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
