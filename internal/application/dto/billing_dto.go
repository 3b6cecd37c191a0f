package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// DetalleRequest línea de detalle tal como la entrega el operador. El valor
// unitario viene CON IGV; la descomposición es asunto del caso de uso.
type DetalleRequest struct {
	Codigo           string          `json:"codigo,omitempty"`
	Descripcion      string          `json:"descripcion"`
	Unidad           string          `json:"unidad,omitempty"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	MtoValorUnitario decimal.Decimal `json:"mto_valor_unitario"`
	PorcentajeIGV    decimal.Decimal `json:"porcentaje_igv"`
	TipAfeIGV        string          `json:"tip_afe_igv,omitempty"`
}

// AEntity aplica los defaults de catálogo y convierte a la entidad de dominio.
func (d DetalleRequest) AEntity() entity.DetalleComprobante {
	unidad := d.Unidad
	if unidad == "" {
		unidad = pkgsunat.UnidadUnidad
	}
	tipAfe := d.TipAfeIGV
	if tipAfe == "" {
		tipAfe = pkgsunat.AfectacionGravadoOneroso
	}
	pct := d.PorcentajeIGV
	if pct.IsZero() && tipAfe == pkgsunat.AfectacionGravadoOneroso {
		pct = decimal.NewFromInt(pkgsunat.IGVPorcentajeDefecto)
	}
	return entity.DetalleComprobante{
		Codigo:           d.Codigo,
		Descripcion:      d.Descripcion,
		Unidad:           unidad,
		Cantidad:         d.Cantidad,
		MtoValorUnitario: d.MtoValorUnitario,
		PorcentajeIGV:    pct,
		TipAfeIGV:        tipAfe,
	}
}

// DetallesAEntity convierte el slice completo.
func DetallesAEntity(detalles []DetalleRequest) []entity.DetalleComprobante {
	out := make([]entity.DetalleComprobante, len(detalles))
	for i, d := range detalles {
		out[i] = d.AEntity()
	}
	return out
}

// EmitirBoletaRequest body para POST /api/boletas.
type EmitirBoletaRequest struct {
	DNI          string           `json:"dni"`
	FechaEmision string           `json:"fecha_emision,omitempty"` // YYYY-MM-DD; vacío = hoy
	FormatoPDF   string           `json:"formato_pdf,omitempty"`   // A4 | TICKET
	Detalles     []DetalleRequest `json:"detalles"`
}

// NotaCreditoRequest body para POST /api/notas-credito.
type NotaCreditoRequest struct {
	TipoDocAfectado   string           `json:"tipo_doc_afectado"` // boleta | factura
	NumeroDocAfectado string           `json:"numero_doc_afectado"`
	CodMotivo         string           `json:"cod_motivo"`
	DesMotivo         string           `json:"des_motivo,omitempty"`
	Detalles          []DetalleRequest `json:"detalles,omitempty"` // solo motivos no-anulación
}

// DocumentoAfectadoResponse vista previa del comprobante original antes de
// emitir la nota de crédito.
type DocumentoAfectadoResponse struct {
	SerieNumero  string          `json:"serie_numero"`
	FechaEmision string          `json:"fecha_emision"`
	Moneda       string          `json:"moneda"`
	MtoImpVenta  decimal.Decimal `json:"mto_imp_venta"`
	RazonSocial  string          `json:"razon_social"`
	DNI          string          `json:"dni"`
}

// DocumentoAfectadoAResponse convierte la entidad a su representación HTTP.
func DocumentoAfectadoAResponse(doc *entity.DocumentoAfectado) DocumentoAfectadoResponse {
	return DocumentoAfectadoResponse{
		SerieNumero:  doc.SerieNumero,
		FechaEmision: doc.FechaEmision.Format("2006-01-02"),
		Moneda:       doc.Moneda,
		MtoImpVenta:  doc.MtoImpVenta,
		RazonSocial:  doc.Cliente.RazonSocial,
		DNI:          doc.Cliente.NumeroDocumento,
	}
}

// CrearResumenRequest body para POST /api/resumenes.
type CrearResumenRequest struct {
	FechaResumen string `json:"fecha_resumen"` // YYYY-MM-DD
}

// EnviarResumenRequest body para POST /api/resumenes/enviar.
type EnviarResumenRequest struct {
	SummaryAPIID int64 `json:"summary_api_id"`
}

// ResumenResponse resumen persistido en respuestas.
type ResumenResponse struct {
	ID             int64  `json:"id"`
	FechaResumen   string `json:"fecha_resumen"`
	NumeroCompleto string `json:"numero_completo"`
	Correlativo    int64  `json:"correlativo"`
	Ticket         string `json:"ticket,omitempty"`
	EstadoSunat    string `json:"estado_sunat"`
	SummaryAPIID   int64  `json:"summary_api_id"`
}

// ResumenAResponse convierte la entidad a su representación HTTP.
func ResumenAResponse(res *entity.ResumenDiario) ResumenResponse {
	return ResumenResponse{
		ID:             res.ID,
		FechaResumen:   res.FechaResumen.Format("2006-01-02"),
		NumeroCompleto: res.NumeroCompleto,
		Correlativo:    res.Correlativo,
		Ticket:         res.Ticket,
		EstadoSunat:    res.EstadoSunat,
		SummaryAPIID:   res.SummaryAPIID,
	}
}

// IngresoResponse fila del libro de ingresos en el reporte JSON.
type IngresoResponse struct {
	ID                int64           `json:"id"`
	Fecha             string          `json:"fecha"`
	Monto             decimal.Decimal `json:"monto"`
	TipoTransaccion   string          `json:"tipo_transaccion"`
	NumeroComprobante string          `json:"numero_comprobante"`
	DNI               string          `json:"dni,omitempty"`
}

// IngresoAResponse convierte la entidad a su representación HTTP.
func IngresoAResponse(ing *entity.Ingreso) IngresoResponse {
	return IngresoResponse{
		ID:                ing.ID,
		Fecha:             ing.Fecha.Format("2006-01-02"),
		Monto:             ing.Monto,
		TipoTransaccion:   ing.TipoTransaccion,
		NumeroComprobante: ing.NumeroComprobante,
		DNI:               ing.DNI,
	}
}

// ParseFecha interpreta una fecha YYYY-MM-DD; cero si viene vacía.
func ParseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
