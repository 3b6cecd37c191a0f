package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// ComprobanteHandler emisión de boletas y notas de crédito (protegido).
type ComprobanteHandler struct {
	boletas *billing.BoletaUseCase
	notas   *billing.NotaCreditoUseCase
}

func NewComprobanteHandler(boletas *billing.BoletaUseCase, notas *billing.NotaCreditoUseCase) *ComprobanteHandler {
	return &ComprobanteHandler{boletas: boletas, notas: notas}
}

// EmitirBoleta godoc
// @Summary      Emitir boleta de venta
// @Tags         comprobantes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmitirBoletaRequest  true  "dni, detalles"
// @Success      201   {object}  billing.ResultadoBoleta
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/boletas [post]
func (h *ComprobanteHandler) EmitirBoleta(c *fiber.Ctx) error {
	var in dto.EmitirBoletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha, err := dto.ParseFecha(in.FechaEmision)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_emision debe ser YYYY-MM-DD"})
	}

	resultado, err := h.boletas.Emitir(c.Context(), billing.EmitirBoletaInput{
		DNI:          in.DNI,
		FechaEmision: fecha,
		FormatoPDF:   in.FormatoPDF,
		Detalles:     dto.DetallesAEntity(in.Detalles),
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resultado)
}

// DescargarPDF godoc
// @Summary      Descargar el PDF de una boleta
// @Tags         comprobantes
// @Produce      application/pdf
// @Param        id       path   int     true   "id de la boleta en el API de facturación"
// @Param        formato  query  string  false  "A4 | TICKET"
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/boletas/{id}/pdf [get]
func (h *ComprobanteHandler) DescargarPDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdf, err := h.boletas.DescargarPDF(c.Context(), id, c.Query("formato"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// DocumentoAfectado godoc
// @Summary      Vista previa del comprobante a afectar
// @Description  Permite al operador verificar el comprobante original antes
// @Description  de emitir la nota de crédito.
// @Tags         comprobantes
// @Produce      json
// @Param        tipo    query  string  true  "boleta | factura"
// @Param        numero  query  string  true  "serie-número (ej. B001-100)"
// @Success      200  {object}  dto.DocumentoAfectadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/notas-credito/documento-afectado [get]
func (h *ComprobanteHandler) DocumentoAfectado(c *fiber.Ctx) error {
	doc, err := h.notas.DocumentoAfectado(c.Context(), c.Query("tipo"), c.Query("numero"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.DocumentoAfectadoAResponse(doc))
}

// EmitirNotaCredito godoc
// @Summary      Emitir nota de crédito
// @Description  Saga de tres pasos: emitir, enviar a SUNAT y conciliar el
// @Description  libro de ingresos. Solo la emisión es abortiva; el resto de
// @Description  fallas viaja en el resultado como pasos degradados.
// @Tags         comprobantes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NotaCreditoRequest  true  "documento afectado y motivo"
// @Success      201   {object}  billing.ResultadoNotaCredito
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/notas-credito [post]
func (h *ComprobanteHandler) EmitirNotaCredito(c *fiber.Ctx) error {
	var in dto.NotaCreditoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	resultado, err := h.notas.Emitir(c.Context(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   in.TipoDocAfectado,
		NumeroDocAfectado: in.NumeroDocAfectado,
		CodMotivo:         in.CodMotivo,
		DesMotivo:         in.DesMotivo,
		Detalles:          dto.DetallesAEntity(in.Detalles),
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"estado":    resultado.EstadoFinal(),
		"resultado": resultado,
	})
}
