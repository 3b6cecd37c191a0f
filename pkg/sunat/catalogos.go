// Package sunat contiene catálogos SUNAT (Perú) usados en la emisión de
// comprobantes electrónicos: tipos de documento, motivos de nota de crédito,
// afectación del IGV y unidades de medida.
package sunat

// =============================================================================
// Catálogo 01 - Tipos de Comprobante de Pago
// =============================================================================

const (
	TipoDocFactura     = "01" // Factura
	TipoDocBoleta      = "03" // Boleta de Venta
	TipoDocNotaCredito = "07" // Nota de Crédito
)

// CodigoTipoDocumento mapea el nombre interno del comprobante ("boleta",
// "factura") al código SUNAT del Catálogo 01.
func CodigoTipoDocumento(tipo string) (string, bool) {
	switch tipo {
	case "boleta":
		return TipoDocBoleta, true
	case "factura":
		return TipoDocFactura, true
	}
	return "", false
}

// =============================================================================
// Catálogo 09 - Motivos de emisión de Nota de Crédito
// Los códigos 01, 02 y 06 anulan la operación completa: los ítems del
// comprobante original se colapsan en una única línea por el monto total.
// =============================================================================

// MotivoNotaCredito es una entrada del Catálogo 09.
type MotivoNotaCredito struct {
	Codigo         string
	Nombre         string
	AnulacionTotal bool
}

// MotivosNotaCredito tabla completa del Catálogo 09.
var MotivosNotaCredito = []MotivoNotaCredito{
	{Codigo: "01", Nombre: "Anulación de la operación", AnulacionTotal: true},
	{Codigo: "02", Nombre: "Anulación por error en el RUC", AnulacionTotal: true},
	{Codigo: "03", Nombre: "Corrección por error en la descripción"},
	{Codigo: "04", Nombre: "Descuento global"},
	{Codigo: "05", Nombre: "Descuento por ítem"},
	{Codigo: "06", Nombre: "Devolución total", AnulacionTotal: true},
	{Codigo: "07", Nombre: "Devolución por ítem"},
	{Codigo: "08", Nombre: "Bonificación"},
	{Codigo: "09", Nombre: "Disminución en el valor"},
	{Codigo: "10", Nombre: "Otros conceptos"},
	{Codigo: "11", Nombre: "Ajustes de operaciones de exportación"},
	{Codigo: "12", Nombre: "Ajustes afectos al IVAP"},
	{Codigo: "13", Nombre: "Ajustes - montos y/o fechas de pago"},
}

// BuscarMotivo devuelve la entrada del Catálogo 09 para el código dado.
func BuscarMotivo(codigo string) (MotivoNotaCredito, bool) {
	for _, m := range MotivosNotaCredito {
		if m.Codigo == codigo {
			return m, true
		}
	}
	return MotivoNotaCredito{}, false
}

// EsAnulacionTotal indica si el motivo colapsa los ítems del comprobante
// original en una sola línea por el total.
func EsAnulacionTotal(codigo string) bool {
	m, ok := BuscarMotivo(codigo)
	return ok && m.AnulacionTotal
}

// =============================================================================
// Catálogo 07 - Afectación del IGV
// =============================================================================

const (
	AfectacionGravadoOneroso   = "10" // Gravado - Operación Onerosa
	AfectacionExoneradoOneroso = "20" // Exonerado - Operación Onerosa
	AfectacionInafectoOneroso  = "30" // Inafecto - Operación Onerosa
	AfectacionExportacion      = "40" // Exportación
)

// AfectacionesIGVValidas códigos de afectación aceptados en líneas de detalle.
var AfectacionesIGVValidas = map[string]bool{
	AfectacionGravadoOneroso:   true,
	AfectacionExoneradoOneroso: true,
	AfectacionInafectoOneroso:  true,
	AfectacionExportacion:      true,
}

// =============================================================================
// Catálogo 03 - Unidades de medida (UN/ECE rec 20, subconjunto de uso común)
// =============================================================================

const (
	UnidadUnidad    = "NIU" // Unidad (bienes)
	UnidadServicio  = "ZZ"  // Unidad no medible (servicios / línea de anulación)
	UnidadKilogramo = "KGM" // Kilogramo
	UnidadLitro     = "LTR" // Litro
)

// =============================================================================
// Catálogo 06 - Tipos de documento de identidad del cliente
// =============================================================================

const (
	DocIdentidadDNI       = "1" // DNI
	DocIdentidadCE        = "4" // Carnet de Extranjería
	DocIdentidadRUC       = "6" // RUC
	DocIdentidadPasaporte = "7" // Pasaporte
)

// =============================================================================
// Valores por defecto de la operación
// =============================================================================

const (
	MonedaSoles          = "PEN"
	IGVPorcentajeDefecto = 18 // tasa general vigente

	SerieBoletaDefecto             = "B001"
	SerieFacturaDefecto            = "F001"
	SerieNotaCreditoBoletaDefecto  = "BC01"
	SerieNotaCreditoFacturaDefecto = "FC01"

	// Línea sintética de anulación total (motivos 01/02/06).
	CodigoItemAnulado    = "ANULADO"
	DescripcionAnulacion = "OPERACION ANULADA COMPLETAMENTE"

	// Tipos de transacción registrados en el libro de ingresos.
	TransaccionBoleta      = "Boleta de Venta"
	TransaccionNotaCredito = "Nota de Crédito"
)

// =============================================================================
// Estados de un resumen diario ante SUNAT
// =============================================================================

const (
	EstadoResumenNinguno   = ""          // creado, aún no enviado
	EstadoResumenPendiente = "PENDIENTE" // enviado, ticket asignado, sin respuesta
	EstadoResumenAceptado  = "ACEPTADO"  // terminal
	EstadoResumenRechazado = "RECHAZADO" // terminal
)

// EsEstadoResumenTerminal indica si el estado ya no admite transiciones.
func EsEstadoResumenTerminal(estado string) bool {
	return estado == EstadoResumenAceptado || estado == EstadoResumenRechazado
}

// EsEstadoResumenValido valida un estado reportado por el API de facturación.
func EsEstadoResumenValido(estado string) bool {
	switch estado {
	case EstadoResumenPendiente, EstadoResumenAceptado, EstadoResumenRechazado:
		return true
	}
	return false
}
