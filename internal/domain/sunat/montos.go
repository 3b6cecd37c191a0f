// Package sunat: descomposición del IGV y colapso de anulación para los
// payloads de comprobantes. Todo lo que la aplicación maneja y muestra es
// CON IGV; el API de facturación exige valores unitarios SIN IGV más el
// porcentaje, así que cada línea pasa por aquí antes de salir al gateway.
//
// Cálculo puro: sin I/O, sin mutación de entradas, montos siempre
// redondeados a 2 decimales (mitad hacia arriba).
package sunat

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

var cien = decimal.NewFromInt(100)

// ValorSinIGV descompone un valor unitario CON IGV: v / (1 + p/100),
// redondeado a 2 decimales. p es el porcentaje (ej. 18).
func ValorSinIGV(valorConIGV, porcentajeIGV decimal.Decimal) (decimal.Decimal, error) {
	if porcentajeIGV.IsNegative() {
		return decimal.Zero, domain.NewValidationError("porcentaje_igv", "el porcentaje de IGV no puede ser negativo")
	}
	if valorConIGV.IsNegative() {
		return decimal.Zero, domain.NewValidationError("mto_valor_unitario", "el valor unitario no puede ser negativo")
	}
	divisor := decimal.NewFromInt(1).Add(porcentajeIGV.Div(cien))
	// DivRound con precisión extra y redondeo final a 2 para no arrastrar
	// el error de la división periódica.
	return valorConIGV.DivRound(divisor, 6).Round(2), nil
}

// ColapsarAnulacion produce la línea sintética única de una anulación total
// (motivos 01/02/06 del Catálogo 09): descripción fija, unidad no medible,
// cantidad 1 y valor unitario SIN IGV derivado del total del documento
// afectado usando el porcentaje de IGV de su primera línea.
func ColapsarAnulacion(doc *entity.DocumentoAfectado) (entity.DetalleComprobante, error) {
	if doc == nil {
		return entity.DetalleComprobante{}, domain.NewValidationError("documento_afectado", "documento afectado requerido")
	}
	if len(doc.Detalles) == 0 {
		// Sin líneas no hay porcentaje ni afectación de referencia; fallar
		// antes que emitir una línea en cero.
		return entity.DetalleComprobante{}, domain.NewValidationError("documento_afectado", "el documento afectado no tiene líneas de detalle")
	}
	if !doc.MtoImpVenta.IsPositive() {
		return entity.DetalleComprobante{}, domain.NewValidationError("mto_imp_venta", "el total del documento afectado debe ser mayor que cero")
	}

	primera := doc.Detalles[0]
	valor, err := ValorSinIGV(doc.MtoImpVenta, primera.PorcentajeIGV)
	if err != nil {
		return entity.DetalleComprobante{}, err
	}

	return entity.DetalleComprobante{
		Codigo:           pkgsunat.CodigoItemAnulado,
		Descripcion:      pkgsunat.DescripcionAnulacion,
		Unidad:           pkgsunat.UnidadServicio,
		Cantidad:         decimal.NewFromInt(1),
		MtoValorUnitario: valor,
		PorcentajeIGV:    primera.PorcentajeIGV,
		TipAfeIGV:        primera.TipAfeIGV,
	}, nil
}

// ResolverDetalles decide el contenido de la nota de crédito según el motivo:
// anulación total -> una única línea sintética; cualquier otro motivo -> las
// líneas entregadas tal cual, con solo su descomposición de IGV recalculada.
func ResolverDetalles(codigoMotivo string, doc *entity.DocumentoAfectado, detalles []entity.DetalleComprobante) ([]entity.DetalleComprobante, error) {
	if _, ok := pkgsunat.BuscarMotivo(codigoMotivo); !ok {
		return nil, domain.NewValidationError("motivo_codigo", "motivo de nota de crédito desconocido: "+codigoMotivo)
	}

	if pkgsunat.EsAnulacionTotal(codigoMotivo) {
		linea, err := ColapsarAnulacion(doc)
		if err != nil {
			return nil, err
		}
		return []entity.DetalleComprobante{linea}, nil
	}

	if len(detalles) == 0 {
		return nil, domain.NewValidationError("detalles", "se requiere al menos una línea de detalle")
	}
	resueltos := make([]entity.DetalleComprobante, len(detalles))
	for i, d := range detalles {
		valor, err := ValorSinIGV(d.MtoValorUnitario, d.PorcentajeIGV)
		if err != nil {
			return nil, err
		}
		resuelto := d // copia; nunca se muta la entrada
		resuelto.MtoValorUnitario = valor
		resueltos[i] = resuelto
	}
	return resueltos, nil
}
