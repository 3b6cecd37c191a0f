package entity

import "time"

// ResumenDiario cabecera de un resumen diario de boletas persistido tras un
// envío exitoso a SUNAT. EstadoSunat transiciona PENDIENTE -> ACEPTADO o
// PENDIENTE -> RECHAZADO; los estados terminales nunca retroceden.
type ResumenDiario struct {
	ID             int64
	FechaResumen   time.Time
	NumeroCompleto string // ej. RC-20250728-1
	Correlativo    int64
	Ticket         string // token asíncrono devuelto por SUNAT
	EstadoSunat    string // ver pkg/sunat: PENDIENTE | ACEPTADO | RECHAZADO
	SummaryAPIID   int64  // id del resumen en el API de facturación (tracking)
	CreatedAt      time.Time
}

// ResumenDetalle referencia a una boleta incluida en un resumen.
type ResumenDetalle struct {
	ID          int64
	ResumenID   int64
	SerieNumero string
}
