// Package sunat implementa el cliente del API externo de facturación
// electrónica: el servicio que emite comprobantes, genera sus PDF y los
// envía a SUNAT. Este sistema nunca construye ni firma XML — eso es del
// gateway; aquí solo viajan payloads JSON y vuelven acuses.
package sunat

import "context"

// ComprobanteEmitido resultado de la emisión de una boleta o nota de crédito.
type ComprobanteEmitido struct {
	ID             int64  // id del comprobante en el API de facturación
	NumeroCompleto string // serie-correlativo asignado (ej. BC01-5)
}

// ResumenCreado resumen diario generado por el API, aún no enviado a SUNAT.
// Es un valor: el caller lo retiene entre la creación y la confirmación de
// envío (no hay estado de sesión en el servidor).
type ResumenCreado struct {
	ID             int64 // summary_api_id para el envío posterior
	FechaResumen   string
	NumeroCompleto string
	Detalles       []string // series-número de las boletas incluidas; puede ser vacío
}

// ResumenEnviado acuse del envío de un resumen a SUNAT.
type ResumenEnviado struct {
	ID             int64
	FechaResumen   string
	NumeroCompleto string
	Correlativo    int64
	Ticket         string // token para la consulta asíncrona de estado
	EstadoSunat    string
	Detalles       []string
}

// Gateway puerto de salida hacia el API de facturación. La implementación
// concreta es REST/JSON; para tests se inyecta un mock.
type Gateway interface {
	// EmitirBoleta crea una boleta de venta electrónica.
	EmitirBoleta(ctx context.Context, p *BoletaPayload) (*ComprobanteEmitido, error)

	// EmitirNotaCredito crea una nota de crédito contra un comprobante emitido.
	EmitirNotaCredito(ctx context.Context, p *NotaCreditoPayload) (*ComprobanteEmitido, error)

	// EnviarNotaCreditoSunat somete la nota ya emitida a validación de SUNAT.
	EnviarNotaCreditoSunat(ctx context.Context, notaID int64) error

	// GenerarPDFBoleta solicita al API generar la representación impresa.
	// formato: "A4" o "TICKET".
	GenerarPDFBoleta(ctx context.Context, boletaID int64, formato string) error

	// DescargarPDFBoleta descarga los bytes del PDF ya generado.
	DescargarPDFBoleta(ctx context.Context, boletaID int64, formato string) ([]byte, error)

	// CrearResumenDiario arma el resumen de boletas de la fecha (YYYY-MM-DD).
	// Un resumen sin boletas es un resultado válido, no un error.
	CrearResumenDiario(ctx context.Context, fecha string) (*ResumenCreado, error)

	// EnviarResumenSunat envía a SUNAT un resumen previamente creado.
	EnviarResumenSunat(ctx context.Context, resumenAPIID int64) (*ResumenEnviado, error)

	// ConsultarEstadoResumen devuelve el estado SUNAT actual del resumen.
	ConsultarEstadoResumen(ctx context.Context, resumenAPIID int64) (string, error)
}
