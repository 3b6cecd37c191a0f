package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// ResumenHandler ciclo de vida del resumen diario (protegido).
type ResumenHandler struct {
	resumenes *billing.ResumenUseCase
	estados   *billing.ConsultarEstadoUseCase
}

func NewResumenHandler(resumenes *billing.ResumenUseCase, estados *billing.ConsultarEstadoUseCase) *ResumenHandler {
	return &ResumenHandler{resumenes: resumenes, estados: estados}
}

// Crear godoc
// @Summary      Crear el resumen diario de una fecha
// @Description  Arma el resumen en el API de facturación sin persistir nada
// @Description  localmente. El id devuelto se entrega después a /enviar.
// @Tags         resumenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearResumenRequest  true  "fecha_resumen YYYY-MM-DD"
// @Success      201   {object}  sunat.ResumenCreado
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/resumenes [post]
func (h *ResumenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearResumenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	creado, err := h.resumenes.Crear(c.Context(), in.FechaResumen)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}

// Enviar godoc
// @Summary      Enviar un resumen creado a SUNAT
// @Tags         resumenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnviarResumenRequest  true  "summary_api_id"
// @Success      201   {object}  dto.ResumenResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/resumenes/enviar [post]
func (h *ResumenHandler) Enviar(c *fiber.Ctx) error {
	var in dto.EnviarResumenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SummaryAPIID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "summary_api_id requerido"})
	}
	resumen, err := h.resumenes.Enviar(c.Context(), in.SummaryAPIID)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ResumenAResponse(resumen))
}

// Listar godoc
// @Summary      Listar resúmenes persistidos
// @Tags         resumenes
// @Produce      json
// @Success      200  {array}  dto.ResumenResponse
// @Router       /api/resumenes [get]
func (h *ResumenHandler) Listar(c *fiber.Ctx) error {
	resumenes, err := h.resumenes.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.ResumenResponse, 0, len(resumenes))
	for _, res := range resumenes {
		out = append(out, dto.ResumenAResponse(res))
	}
	return c.JSON(out)
}

// Detalles godoc
// @Summary      Boletas incluidas en un resumen
// @Tags         resumenes
// @Produce      json
// @Param        id  path  int  true  "id local del resumen"
// @Success      200  {array}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resumenes/{id}/detalles [get]
func (h *ResumenHandler) Detalles(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	detalles, err := h.resumenes.Detalles(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(detalles)
}

// ConsultarEstado godoc
// @Summary      Conciliar el estado SUNAT de un resumen
// @Description  PENDIENTE -> ACEPTADO | RECHAZADO. Un estado terminal nunca
// @Description  retrocede; una falla de consulta responde 409 sin tocar nada.
// @Tags         resumenes
// @Produce      json
// @Param        id  path  int  true  "id local del resumen"
// @Success      200  {object}  billing.EstadoResumenResultado
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/resumenes/{id}/estado [post]
func (h *ResumenHandler) ConsultarEstado(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resultado, err := h.estados.Consultar(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resultado)
}

// ConciliarPendientes godoc
// @Summary      Conciliar todos los resúmenes pendientes
// @Tags         resumenes
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/resumenes/conciliar [post]
func (h *ResumenHandler) ConciliarPendientes(c *fiber.Ctx) error {
	actualizados, errs := h.estados.ConciliarPendientes(c.Context())
	fallas := make([]string, 0, len(errs))
	for _, err := range errs {
		fallas = append(fallas, err.Error())
	}
	return c.JSON(fiber.Map{
		"actualizados": actualizados,
		"fallas":       fallas,
	})
}
