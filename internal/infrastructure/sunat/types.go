package sunat

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Tipos de alambre del API de facturación. Los nombres de campo JSON son los
// que el API define; no se renombran aunque mezclen castellano e inglés.

// ClientePayload cliente del comprobante. Los campos opcionales llevan
// omitempty para no mandar cadenas vacías que el API rechaza.
type ClientePayload struct {
	TipoDocumento   string `json:"tipo_documento"`
	NumeroDocumento string `json:"numero_documento"`
	RazonSocial     string `json:"razon_social"`
	NombreComercial string `json:"nombre_comercial,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
	Ubigeo          string `json:"ubigeo,omitempty"`
	Distrito        string `json:"distrito,omitempty"`
	Provincia       string `json:"provincia,omitempty"`
	Departamento    string `json:"departamento,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Email           string `json:"email,omitempty"`
}

// DetallePayload línea de detalle. mto_valor_unitario va SIN IGV; la
// descomposición ocurre antes, en internal/domain/sunat.
type DetallePayload struct {
	Codigo           string          `json:"codigo,omitempty"`
	Descripcion      string          `json:"descripcion"`
	Unidad           string          `json:"unidad"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	MtoValorUnitario decimal.Decimal `json:"mto_valor_unitario"`
	PorcentajeIGV    decimal.Decimal `json:"porcentaje_igv"`
	TipAfeIGV        string          `json:"tip_afe_igv"`
}

// BoletaPayload cuerpo de POST /boletas. CompanyID y BranchID los completa
// el cliente HTTP con los valores de configuración.
type BoletaPayload struct {
	CompanyID    int64            `json:"company_id"`
	BranchID     int64            `json:"branch_id"`
	Serie        string           `json:"serie"`
	FechaEmision string           `json:"fecha_emision"` // YYYY-MM-DD
	Moneda       string           `json:"moneda"`
	Cliente      ClientePayload   `json:"client"`
	Detalles     []DetallePayload `json:"detalles"`
}

// NotaCreditoPayload cuerpo de POST /credit-notes.
type NotaCreditoPayload struct {
	CompanyID      int64            `json:"company_id"`
	BranchID       int64            `json:"branch_id"`
	Serie          string           `json:"serie"`
	FechaEmision   string           `json:"fecha_emision"`
	Moneda         string           `json:"moneda"`
	TipDocAfectado string           `json:"tipo_doc_afectado"` // Catálogo 01: 03 boleta, 01 factura
	NumDocAfectado string           `json:"num_doc_afectado"`  // serie-correlativo, ej. B001-100
	CodMotivo      string           `json:"cod_motivo"`        // Catálogo 09
	DesMotivo      string           `json:"des_motivo"`
	Cliente        ClientePayload   `json:"client"`
	Detalles       []DetallePayload `json:"detalles"`
}

// envelope sobre estándar de respuesta del API: {success, message, data}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// comprobanteData acuse de emisión de boleta o nota de crédito.
type comprobanteData struct {
	ID             int64  `json:"id"`
	NumeroCompleto string `json:"numero_completo"`
}

type resumenDetalleData struct {
	SerieNumero string `json:"serie_numero"`
}

// resumenData respuesta de create-daily-summary y de send-sunat del resumen.
// send-sunat completa correlativo, ticket y estado_sunat.
type resumenData struct {
	ID             int64                `json:"id"`
	FechaResumen   string               `json:"fecha_resumen"`
	NumeroCompleto string               `json:"numero_completo"`
	Correlativo    int64                `json:"correlativo"`
	Ticket         string               `json:"ticket"`
	EstadoSunat    string               `json:"estado_sunat"`
	Detalles       []resumenDetalleData `json:"detalles"`
}

func (r resumenData) seriesNumeros() []string {
	out := make([]string, 0, len(r.Detalles))
	for _, d := range r.Detalles {
		out = append(out, d.SerieNumero)
	}
	return out
}

// estadoData respuesta de check-status.
type estadoData struct {
	EstadoSunat string `json:"estado_sunat"`
}
