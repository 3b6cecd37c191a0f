package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente datos del cliente tal como viajan en el payload de un comprobante.
// Es una copia tomada al momento de la emisión, nunca una referencia viva al
// registro interno: editar el padrón después no altera un comprobante emitido.
type Cliente struct {
	TipoDocumento   string
	NumeroDocumento string
	RazonSocial     string
	NombreComercial string
	Direccion       string
	Ubigeo          string
	Distrito        string
	Provincia       string
	Departamento    string
	Telefono        string
	Email           string
}

// DetalleComprobante línea de un comprobante. MtoValorUnitario es el precio
// unitario CON IGV mientras el detalle vive en la aplicación; la
// descomposición a valor sin IGV se hace recién al armar el payload del
// gateway (ver internal/domain/sunat).
type DetalleComprobante struct {
	Codigo           string
	Descripcion      string
	Unidad           string
	Cantidad         decimal.Decimal
	MtoValorUnitario decimal.Decimal
	PorcentajeIGV    decimal.Decimal
	TipAfeIGV        string
}

// Subtotal de la línea (cantidad * valor unitario).
func (d DetalleComprobante) Subtotal() decimal.Decimal {
	return d.Cantidad.Mul(d.MtoValorUnitario)
}

// DocumentoAfectado comprobante de venta ya emitido (boleta) contra el cual
// se emite una nota de crédito. Solo lectura para este sistema.
type DocumentoAfectado struct {
	IngresoID    int64 // id del registro de ingreso asociado
	SerieNumero  string
	FechaEmision time.Time
	Moneda       string
	MtoImpVenta  decimal.Decimal // total CON IGV
	Cliente      Cliente
	Detalles     []DetalleComprobante
}
