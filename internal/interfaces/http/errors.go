package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// responderError mapea un error de dominio al status HTTP y cuerpo estándar.
// El orden importa: los errores tipados primero, los sentinelas después.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrTipoDocumentoNoSoportado):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_DOCUMENT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case domain.IsReconciliation(err):
		// La conciliación no resuelta deja el estado local intacto; 409 para
		// que el cliente distinga "sin resolver" de una falla del servidor.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RECONCILIATION", Message: err.Error()})
	case domain.IsGateway(err):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GATEWAY", Message: err.Error()})
	case domain.IsStore(err):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
