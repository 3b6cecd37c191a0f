package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrDuplicate    = errors.New("recurso duplicado")

	// ErrTipoDocumentoNoSoportado: la búsqueda de documento afectado solo
	// cubre boletas; una factura se rechaza explícitamente en lugar de
	// responder "no encontrado".
	ErrTipoDocumentoNoSoportado = errors.New("tipo de documento no soportado para nota de crédito")
)

// ValidationError entrada malformada o incompleta. Se detecta antes de
// cualquier llamada remota: si aparece, no se tocó ni el gateway ni la DB.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string {
	if e.Campo == "" {
		return "validación: " + e.Mensaje
	}
	return fmt.Sprintf("validación (%s): %s", e.Campo, e.Mensaje)
}

// Es un ErrInvalidInput a efectos del mapeo HTTP.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un error de validación.
func NewValidationError(campo, mensaje string) *ValidationError {
	return &ValidationError{Campo: campo, Mensaje: mensaje}
}

// GatewayError falla de una llamada al API de facturación / SUNAT.
// Mensaje conserva el texto crudo del proveedor para que el operador lo vea.
type GatewayError struct {
	Operacion string // ej. "emitir nota de crédito", "enviar resumen"
	Mensaje   string
	Err       error
}

func (e *GatewayError) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("gateway (%s): %s", e.Operacion, e.Mensaje)
	}
	return fmt.Sprintf("gateway (%s): %v", e.Operacion, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// StoreError falla de lectura/escritura en la base de datos interna.
// Se distingue del GatewayError porque la remediación es distinta
// (base de datos vs. API externo).
type StoreError struct {
	Operacion string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store (%s): %v", e.Operacion, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ReconciliationError la consulta de estado falló o devolvió un estado no
// reconocido. Nunca se interpreta como rechazo: el estado almacenado queda
// intacto y el caso se reporta como "sin resolver".
type ReconciliationError struct {
	Motivo string
	Err    error
}

func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conciliación: %s: %v", e.Motivo, e.Err)
	}
	return "conciliación: " + e.Motivo
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

// Helpers para clasificar errores en handlers y logs.

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsGateway(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge)
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func IsReconciliation(err error) bool {
	var re *ReconciliationError
	return errors.As(err, &re)
}
