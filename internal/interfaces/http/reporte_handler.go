package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// ReporteHandler reporte de ingresos por rango de fechas (protegido).
type ReporteHandler struct {
	reportes *billing.ReporteUseCase
}

func NewReporteHandler(reportes *billing.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{reportes: reportes}
}

func (h *ReporteHandler) rango(c *fiber.Ctx) (desde, hasta time.Time, err error) {
	desde, err = time.Parse("2006-01-02", c.Query("desde"))
	if err != nil {
		return
	}
	hasta, err = time.Parse("2006-01-02", c.Query("hasta"))
	return
}

// Ingresos godoc
// @Summary      Reporte de ingresos del período
// @Tags         reportes
// @Produce      json
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        hasta  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ingresos [get]
func (h *ReporteHandler) Ingresos(c *fiber.Ctx) error {
	desde, hasta, err := h.rango(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta deben ser YYYY-MM-DD"})
	}
	reporte, err := h.reportes.Generar(c.Context(), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}

	filas := make([]dto.IngresoResponse, 0, len(reporte.Filas))
	for _, ing := range reporte.Filas {
		filas = append(filas, dto.IngresoAResponse(ing))
	}
	return c.JSON(fiber.Map{
		"desde":  reporte.Desde.Format("2006-01-02"),
		"hasta":  reporte.Hasta.Format("2006-01-02"),
		"filas":  filas,
		"ventas": reporte.Ventas,
		"notas":  reporte.Notas,
		"neto":   reporte.Neto,
	})
}

// IngresosPDF godoc
// @Summary      Reporte de ingresos del período en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        hasta  query  string  true  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ingresos/pdf [get]
func (h *ReporteHandler) IngresosPDF(c *fiber.Ctx) error {
	desde, hasta, err := h.rango(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta deben ser YYYY-MM-DD"})
	}
	pdf, err := h.reportes.GenerarPDF(c.Context(), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ingresos.pdf"`)
	return c.Send(pdf)
}
