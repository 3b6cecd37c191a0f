package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	BoletaUC  *billing.BoletaUseCase
	NotaUC    *billing.NotaCreditoUseCase
	ResumenUC *billing.ResumenUseCase
	EstadoUC  *billing.ConsultarEstadoUseCase
	ReporteUC *billing.ReporteUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Comprobantes (protegido)
	comprobanteHandler := NewComprobanteHandler(deps.BoletaUC, deps.NotaUC)
	boletas := protected.Group("/boletas")
	boletas.Post("/", comprobanteHandler.EmitirBoleta)
	boletas.Get("/:id/pdf", comprobanteHandler.DescargarPDF)
	protected.Get("/notas-credito/documento-afectado", comprobanteHandler.DocumentoAfectado)
	protected.Post("/notas-credito", comprobanteHandler.EmitirNotaCredito)

	// Resúmenes diarios (protegido)
	resumenHandler := NewResumenHandler(deps.ResumenUC, deps.EstadoUC)
	resumenes := protected.Group("/resumenes")
	resumenes.Post("/", resumenHandler.Crear)
	resumenes.Get("/", resumenHandler.Listar)
	resumenes.Post("/enviar", resumenHandler.Enviar)
	resumenes.Post("/conciliar", resumenHandler.ConciliarPendientes)
	resumenes.Get("/:id/detalles", resumenHandler.Detalles)
	resumenes.Post("/:id/estado", resumenHandler.ConsultarEstado)

	// Reportes (protegido)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes := protected.Group("/reportes")
	reportes.Get("/ingresos", reporteHandler.Ingresos)
	reportes.Get("/ingresos/pdf", reporteHandler.IngresosPDF)
}
